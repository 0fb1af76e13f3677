package shell

import (
	"fmt"
	"strings"

	"github.com/notyourimaginarycoder/termfolio"
)

const githubURL = "https://github.com/notyourimaginarycoder"

type openTarget struct {
	url     string
	message string
}

var openTargets = map[string]openTarget{
	"github":             {githubURL, "opening github..."},
	"portfolio":          {githubURL + "/portfolio", "opening source code for portfolio..."},
	"terminal-portfolio": {githubURL + "/terminal-portfolio", "opening source code for terminal-portfolio..."},
	"stackdew-valley":    {githubURL + "/stackdew-valley", "opening source code for stackdew-valley..."},
}

const skillsLanguages = "\t├─ general purpose\t\t: c#, java, javascript, python, typescript\n" +
	"        ├─ querying\t\t\t: sql\n" +
	"        ├─ scripting\t\t\t: autohotkey, bash\n" +
	"        ├─ systems programming\t\t: assembly, c, c++\n" +
	"        └─ web development\t\t: css, html"

const skillsTools = "\t├─ databases\t\t\t: firebase, mysql workbench, postgresql\n" +
	"        ├─ devops & cloud\t\t: github actions, netlify, vercel\n" +
	"        ├─ frontend frameworks\t\t: react, vite\n" +
	"        ├─ ides & editors\t\t: visual studio, visual studio code\n" +
	"        ├─ testing\t\t\t: jest, supertest\n" +
	"        └─ version control\t\t: git, github"

// dateLayout mirrors the browser's Date.toString form, e.g.
// "thu oct 15 2026 09:30:00 gmt+0200 (cest)" once lowercased.
const dateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

func (s *Shell) cmdAbout(*Invocation) termfolio.Response {
	return termfolio.NewText("i am the imaginary friend we all used to have at some point")
}

func (s *Shell) cmdContact(*Invocation) termfolio.Response {
	return termfolio.NewText("github: " + githubURL)
}

func (s *Shell) cmdVersion(*Invocation) termfolio.Response {
	return termfolio.NewText("terminal version: " + s.cfg.Version)
}

// alias registers with exactly two arguments and lists otherwise.
func (s *Shell) cmdAlias(inv *Invocation) termfolio.Response {
	if len(inv.Args) == 2 {
		s.aliases.Set(inv.Args[0], inv.Args[1])
		return termfolio.NewText(fmt.Sprintf("alias '%s' created for command '%s'.", inv.Args[0], inv.Args[1]))
	}
	return termfolio.NewText(strings.Join(s.aliases.List(), "\n"))
}

func (s *Shell) cmdClear(*Invocation) termfolio.Response {
	return termfolio.NewClear()
}

func (s *Shell) cmdDate(*Invocation) termfolio.Response {
	return termfolio.NewText(strings.ToLower(s.now().Format(dateLayout)))
}

func (s *Shell) cmdEcho(inv *Invocation) termfolio.Response {
	if inv.Arg == "" {
		return termfolio.NewText("no message to echo")
	}
	return termfolio.NewText(inv.Arg)
}

func (s *Shell) cmdGuess(inv *Invocation) termfolio.Response {
	if len(inv.Args) != 1 {
		return termfolio.NewText(fmt.Sprintf("Guess a number between %d and %d.", GuessMin, GuessMax))
	}
	return termfolio.NewText(s.game.Guess(inv.Args[0]))
}

func (s *Shell) cmdGreet(*Invocation) termfolio.Response {
	var greeting string
	switch hour := s.now().Hour(); {
	case hour < 12:
		greeting = "good morning"
	case hour < 18:
		greeting = "good afternoon"
	default:
		greeting = "good evening"
	}
	return termfolio.NewText(greeting + ", welcome to the terminal!")
}

func (s *Shell) cmdHelp(*Invocation) termfolio.Response {
	var b strings.Builder
	b.WriteString("available commands (use --help or -h for more details):")
	for _, name := range s.Commands() {
		b.WriteString("\n  - ")
		b.WriteString(name)
	}
	return termfolio.NewText(b.String())
}

func (s *Shell) cmdHistory(*Invocation) termfolio.Response {
	return termfolio.NewText(strings.Join(s.history.Entries(), "\n"))
}

// open answers with confirmation text and an OpenLinkEffect; the link is
// opened by the front end, not here.
func (s *Shell) cmdOpen(inv *Invocation) termfolio.Response {
	target, ok := openTargets[inv.Arg]
	if !ok {
		return termfolio.NewText("unknown target - try open --help or -h")
	}
	return termfolio.NewText(target.message).WithEffect(termfolio.NewOpenLink(target.url))
}

// ping never touches the network.
func (s *Shell) cmdPing(inv *Invocation) termfolio.Response {
	if inv.Arg == "" {
		return termfolio.NewText("Please provide a host to ping.")
	}
	return termfolio.NewText(fmt.Sprintf("Pinging %s... Response time: 50ms", inv.Arg))
}

func (s *Shell) cmdSkills(inv *Invocation) termfolio.Response {
	switch inv.Arg {
	case "languages":
		return termfolio.NewText(skillsLanguages)
	case "tools":
		return termfolio.NewText(skillsTools)
	default:
		return termfolio.NewText("unknown target - try skills --help or -h")
	}
}

func (s *Shell) cmdUptime(*Invocation) termfolio.Response {
	elapsed := s.now().Sub(s.started)
	return termfolio.NewText(fmt.Sprintf("system uptime: %d seconds", int64(elapsed.Seconds())))
}
