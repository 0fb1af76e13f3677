package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

var (
	termfolioBin string
	projRoot     string
	testEnv      *E2ETestEnvironment
)

func TestMain(m *testing.M) {
	var err error

	// Build the binary once for all tests
	tmpBinDir, err := os.MkdirTemp("", "termfolio-bin")
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := os.RemoveAll(tmpBinDir); err != nil {
			panic(err)
		}
	}()

	termfolioBin = filepath.Join(tmpBinDir, "termfolio")

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot determine current file path")
	}
	projRoot = filepath.Join(filepath.Dir(thisFile), "..", "..")
	src := filepath.Join(projRoot, "cmd", "termfolio")

	cmd := exec.Command("go", "build", "-o", termfolioBin, src)
	cmd.Dir = projRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		panic(string(out))
	}

	testEnv, err = NewE2ETestEnvironment(termfolioBin)
	if err != nil {
		panic(err)
	}
	defer testEnv.Close()

	code := m.Run()
	os.Exit(code)
}

func TestE2EDefaultTree(t *testing.T) {
	tf := testEnv.StartServer(t, "", "")
	defer tf.Stop()

	id := tf.CreateSession(t).ID

	if got := tf.Exec(t, id, "ls").Output; got != "about.txt  projects  contact.txt" {
		t.Fatalf("ls mismatch: got %q", got)
	}
	if got := tf.Exec(t, id, "cd secret").Cwd; got != "/secret" {
		t.Fatalf("cwd mismatch: got %q", got)
	}
	if got := tf.Exec(t, id, "cat hidden.txt").Output; got != "nice! you found my hidden text file" {
		t.Fatalf("cat mismatch: got %q", got)
	}
}

func TestE2ENodesFile(t *testing.T) {
	tf := testEnv.StartServer(t, "", `[
		{"type": "dir", "path": "/", "entries": ["readme.txt", "work"]},
		{"type": "dir", "path": "/work", "entries": ["api.py"]},
		{"type": "file", "path": "/readme.txt", "content": "custom tree"}
	]`)
	defer tf.Stop()

	id := tf.CreateSession(t).ID

	if got := tf.Exec(t, id, "ls").Output; got != "readme.txt  work" {
		t.Fatalf("ls mismatch: got %q", got)
	}
	if got := tf.Exec(t, id, "cat readme.txt").Output; got != "custom tree" {
		t.Fatalf("cat mismatch: got %q", got)
	}
	if got := tf.Exec(t, id, "cd about.txt").Output; got != "directory not found" {
		t.Fatalf("cd mismatch: got %q", got)
	}
}

func TestE2EConfigFile(t *testing.T) {
	tf := testEnv.StartServer(t, "prompt: guest@e2e:~$\nversion: 9.9.9\n", "")
	defer tf.Stop()

	session := tf.CreateSession(t)
	if session.Prompt != "guest@e2e:~$" {
		t.Fatalf("prompt mismatch: got %q", session.Prompt)
	}
	if got := tf.Exec(t, session.ID, "version").Output; got != "terminal version: 9.9.9" {
		t.Fatalf("version mismatch: got %q", got)
	}
}

func TestE2ESessionsAreIsolated(t *testing.T) {
	tf := testEnv.StartServer(t, "", "")
	defer tf.Stop()

	a := tf.CreateSession(t).ID
	b := tf.CreateSession(t).ID

	tf.Exec(t, a, "rm about.txt")
	tf.Exec(t, a, "guess 50")

	if got := tf.Exec(t, b, "ls").Output; got != "about.txt  projects  contact.txt" {
		t.Fatalf("session b saw session a's changes: %q", got)
	}
	if got := tf.Exec(t, b, "history").Output; got != "ls\nhistory" {
		t.Fatalf("history leaked across sessions: %q", got)
	}
}

func TestE2EGracefulStop(t *testing.T) {
	tf := testEnv.StartServer(t, "", "")
	tf.CreateSession(t)

	if err := tf.Stop(); err != nil {
		stdout, stderr := tf.GetLogs()
		t.Fatalf("server did not exit cleanly: %v\nstdout: %s\nstderr: %s", err, stdout, stderr)
	}
}

// E2ETestEnvironment holds the built binary and a scratch directory
type E2ETestEnvironment struct {
	Bin     string
	BaseDir string
}

// ServerInstance is one running `termfolio --serve` process
type ServerInstance struct {
	cmd     *exec.Cmd
	BaseURL string
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	cleanup func()
	stopped bool
}

type sessionInfo struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
	Banner string `json:"banner"`
}

type execResult struct {
	Output string `json:"output"`
	Clear  bool   `json:"clear"`
	Cwd    string `json:"cwd"`
}

// NewE2ETestEnvironment creates a shared test environment
func NewE2ETestEnvironment(bin string) (*E2ETestEnvironment, error) {
	baseDir, err := os.MkdirTemp("", "termfolio-e2e-tests")
	if err != nil {
		return nil, err
	}
	return &E2ETestEnvironment{Bin: bin, BaseDir: baseDir}, nil
}

// Close cleans up the test environment
func (env *E2ETestEnvironment) Close() {
	if env.BaseDir != "" {
		_ = os.RemoveAll(env.BaseDir) // Best effort cleanup
	}
}

// StartServer launches the binary in serve mode on a free port. Empty
// configYAML or nodesJSON leave the respective flag unset.
func (env *E2ETestEnvironment) StartServer(t *testing.T, configYAML, nodesJSON string) *ServerInstance {
	t.Helper()

	testID := strings.ReplaceAll(t.Name(), "/", "_")
	dir := filepath.Join(env.BaseDir, testID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create test dir: %v", err)
	}

	addr := freeAddr(t)
	configFile := filepath.Join(dir, "config.yaml")
	configYAML = fmt.Sprintf("listen_addr: %q\n%s", addr, configYAML)
	if err := os.WriteFile(configFile, []byte(configYAML), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	args := []string{"--serve", "--config", configFile, "-v", "4"}
	if nodesJSON != "" {
		nodesFile := filepath.Join(dir, "nodes.json")
		if err := os.WriteFile(nodesFile, []byte(nodesJSON), 0o644); err != nil {
			t.Fatalf("Failed to write nodes file: %v", err)
		}
		args = append(args, "--nodes", nodesFile)
	}

	cmd := exec.Command(env.Bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	instance := &ServerInstance{
		cmd:     cmd,
		BaseURL: "http://" + addr,
		stdout:  &stdout,
		stderr:  &stderr,
		cleanup: func() {
			_ = os.RemoveAll(dir) // Best effort cleanup
		},
	}

	if err := instance.WaitForHealth(15 * time.Second); err != nil {
		_ = instance.Stop()
		_, logs := instance.GetLogs()
		t.Fatalf("Server did not become ready: %v\n%s", err, logs)
	}

	return instance
}

// freeAddr reserves a loopback port and releases it for the server to bind
func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to reserve port: %v", err)
	}
	addr := l.Addr().String()
	_ = l.Close()
	return addr
}

// CreateSession opens a new session
func (s *ServerInstance) CreateSession(t *testing.T) sessionInfo {
	t.Helper()
	res, err := http.Post(s.BaseURL+"/api/v1/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create session: unexpected status %d", res.StatusCode)
	}

	var info sessionInfo
	if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
		t.Fatalf("create session: %v", err)
	}
	return info
}

// Exec runs one line in session id
func (s *ServerInstance) Exec(t *testing.T, id, line string) execResult {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"line": line})
	res, err := http.Post(s.BaseURL+"/api/v1/sessions/"+id+"/exec", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("exec %q: %v", line, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("exec %q: unexpected status %d", line, res.StatusCode)
	}

	var out execResult
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("exec %q: %v", line, err)
	}
	return out
}

// Stop interrupts the process and waits for it to exit
func (s *ServerInstance) Stop() error {
	if s.stopped {
		return nil
	}
	s.stopped = true

	var err error
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Signal(os.Interrupt) // Process may have already exited

		done := make(chan error, 1)
		go func() {
			done <- s.cmd.Wait()
		}()

		select {
		case err = <-done:
		case <-time.After(10 * time.Second):
			_ = s.cmd.Process.Kill() // Process may have already exited
			<-done
			err = fmt.Errorf("timeout waiting for graceful shutdown")
		}
	}

	if s.cleanup != nil {
		s.cleanup()
	}
	return err
}

// WaitForHealth polls /health until it answers or timeout passes
func (s *ServerInstance) WaitForHealth(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		if res, err := http.Get(s.BaseURL + "/health"); err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("timeout waiting for server to be ready")
}

// GetLogs returns the stdout and stderr of the server process
func (s *ServerInstance) GetLogs() (stdout, stderr string) {
	return s.stdout.String(), s.stderr.String()
}
