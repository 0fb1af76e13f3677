package shell

import (
	"fmt"
	"strings"

	"github.com/notyourimaginarycoder/termfolio"
)

// Handler runs one command against the session.
type Handler func(s *Shell, inv *Invocation) termfolio.Response

// Command is a single entry of the command table. Help text, usage and
// behaviour live together so they cannot drift apart.
type Command struct {
	Name        string
	Description string
	Usage       []string // Optional usage lines
	Run         Handler
}

// Help returns the description followed by the usage lines, if any.
func (c *Command) Help() string {
	out := fmt.Sprintf("'%s' — %s", c.Name, c.Description)
	if len(c.Usage) > 0 {
		out += "\nUsage:\n  " + strings.Join(c.Usage, "\n  ")
	}
	return out
}

// builtinCommands returns the fixed command table.
func builtinCommands() []*Command {
	return []*Command{
		{Name: "about", Description: "show a short bio.", Run: (*Shell).cmdAbout},
		{Name: "alias", Description: "create or show command aliases.", Usage: []string{"alias [name] [command]"}, Run: (*Shell).cmdAlias},
		{Name: "cat", Description: "display the contents of a file.", Usage: []string{"cat [file]"}, Run: (*Shell).cmdCat},
		{Name: "cd", Description: "change to a different directory.", Usage: []string{"cd [folder]", "cd .."}, Run: (*Shell).cmdCd},
		{Name: "clear", Description: "clear the terminal screen.", Run: (*Shell).cmdClear},
		{Name: "contact", Description: "display email and GitHub link.", Run: (*Shell).cmdContact},
		{Name: "date", Description: "show the current date and time.", Run: (*Shell).cmdDate},
		{Name: "echo", Description: "echo a message to the terminal.", Usage: []string{"echo [message]"}, Run: (*Shell).cmdEcho},
		{Name: "guess", Description: "play a guess-the-number game.", Run: (*Shell).cmdGuess},
		{Name: "greet", Description: "personalized greeting.", Run: (*Shell).cmdGreet},
		{Name: "help", Description: "display all available commands.", Run: (*Shell).cmdHelp},
		{Name: "history", Description: "show the command history.", Run: (*Shell).cmdHistory},
		{Name: "ls", Description: "list files and folders in the current directory.", Usage: []string{"ls", "ls -l"}, Run: (*Shell).cmdLs},
		{Name: "mkdir", Description: "create a new directory.", Usage: []string{"mkdir [directory]"}, Run: (*Shell).cmdMkdir},
		{Name: "mv", Description: "rename a file.", Usage: []string{"mv [old_name] [new_name]"}, Run: (*Shell).cmdMv},
		{Name: "open", Description: "open an external site.", Usage: []string{"open github", "open portfolio", "open terminal-portfolio"}, Run: (*Shell).cmdOpen},
		{Name: "ping", Description: "ping a remote server.", Usage: []string{"ping [host]"}, Run: (*Shell).cmdPing},
		{Name: "projects", Description: "list featured personal projects.", Run: (*Shell).cmdProjects},
		{Name: "reboot", Description: "reboot the system.", Run: fixed("rebooting system... terminal will reload shortly")},
		{Name: "reload", Description: "reload the terminal window.", Run: fixed("reloading terminal...")},
		{Name: "rm", Description: "remove a file.", Usage: []string{"rm [file]"}, Run: (*Shell).cmdRm},
		{Name: "shutdown", Description: "shut down the system.", Run: fixed("shutting down system...")},
		{Name: "skills", Description: "list programming languages and tools.", Usage: []string{"languages", "tools"}, Run: (*Shell).cmdSkills},
		{Name: "sudo", Description: "try it and see.", Run: fixed("nice! but wrong terminal")},
		{Name: "uptime", Description: "show the system uptime.", Run: (*Shell).cmdUptime},
		{Name: "version", Description: "show the current terminal version.", Run: (*Shell).cmdVersion},
		{Name: "whoami", Description: "display a fun user identity message.", Run: fixed("visitor")},
	}
}

// fixed returns a Handler that always answers text.
func fixed(text string) Handler {
	return func(*Shell, *Invocation) termfolio.Response {
		return termfolio.NewText(text)
	}
}
