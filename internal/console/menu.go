// Package console runs the interactive configuration menu.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5"

	"github.com/bethropolis/devblog-manifest/internal/manifest"
)

// State is the configuration edited through the menu.
type State struct {
	TargetDir      string
	BlogPostDir    string
	BlogFolderName string
	ManifestName   string
	// WorkingDir anchors relative input and the default folder.
	WorkingDir string
}

// DefaultState is what option 1 resets to.
func DefaultState(cwd, folderName string) State {
	if strings.TrimSpace(folderName) == "" {
		folderName = manifest.DefaultBlogFolderName
	}
	target := filepath.Join(cwd, folderName)
	return State{
		TargetDir:      target,
		BlogPostDir:    target,
		BlogFolderName: folderName,
		ManifestName:   manifest.DefaultManifestName,
		WorkingDir:     cwd,
	}
}

// Options converts the state for the builder.
func (s State) Options(save bool) manifest.Options {
	return manifest.Options{
		TargetDir:      s.abs(s.TargetDir),
		BlogPostDir:    s.abs(s.BlogPostDir),
		BlogFolderName: s.BlogFolderName,
		ManifestName:   s.ManifestName,
		Save:           save,
	}
}

func (s State) abs(p string) string {
	if p == "" || filepath.IsAbs(p) || s.WorkingDir == "" {
		return p
	}
	return filepath.Join(s.WorkingDir, p)
}

// Action is what the menu loop does after a step.
type Action int

const (
	Continue Action = iota
	Generate
	Exit
)

// GenerateFunc runs the builder for the given state.
type GenerateFunc func(State) error

// Menu reads choices from in and writes prompts to out.
type Menu struct {
	in        *bufio.Reader
	out       io.Writer
	fs        billy.Filesystem
	clear     bool
	useColors bool
}

// NewMenu creates a menu. fsys is used to show whether directories exist;
// clear enables clearing the screen before each redraw.
func NewMenu(in io.Reader, out io.Writer, fsys billy.Filesystem, clear, useColors bool) *Menu {
	return &Menu{
		in:        bufio.NewReader(in),
		out:       out,
		fs:        fsys,
		clear:     clear,
		useColors: useColors,
	}
}

// Run loops until the user generates a manifest or exits, and returns the
// final state. Running out of input counts as exit.
func (m *Menu) Run(state State, generate GenerateFunc) (State, error) {
	for {
		if m.clear {
			fmt.Fprint(m.out, "\033[H\033[2J")
		}
		m.showConfiguration(state)
		m.showMenu()

		choice, err := m.readLine()
		if errors.Is(err, io.EOF) && choice == "" {
			fmt.Fprintln(m.out)
			return state, nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return state, err
		}

		next, action, err := m.Step(state, choice)
		if err != nil {
			return state, err
		}
		state = next

		switch action {
		case Generate:
			return state, generate(state)
		case Exit:
			return state, nil
		}
	}
}

// Step applies one menu choice to state.
func (m *Menu) Step(state State, choice string) (State, Action, error) {
	switch strings.TrimSpace(choice) {
	case "1":
		return DefaultState(state.WorkingDir, state.BlogFolderName), Generate, nil
	case "2":
		name, err := m.ask("Enter Custom Blog Folder Name: ")
		if err != nil {
			return state, Exit, err
		}
		next := DefaultState(state.WorkingDir, name)
		next.ManifestName = state.ManifestName
		next.BlogFolderName = name
		return next, Continue, nil
	case "3":
		dir, err := m.ask("Enter Target Directory: ")
		state.TargetDir = dir
		return state, Continue, err
	case "4":
		dir, err := m.ask("Enter Blog Folder Directory: ")
		state.BlogPostDir = dir
		return state, Continue, err
	case "5":
		name, err := m.ask("Enter Manifest File Name: ")
		state.ManifestName = name
		return state, Continue, err
	case "6":
		return state, Generate, nil
	case "7":
		return state, Exit, nil
	default:
		fmt.Fprintln(m.out, m.paint(color.FgRed, "Invalid option selected. Please try again."))
		return state, Continue, nil
	}
}

func (m *Menu) ask(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	answer, err := m.readLine()
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return answer, err
}

func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	return strings.TrimSpace(line), err
}

func (m *Menu) showConfiguration(s State) {
	fmt.Fprintln(m.out, m.paint(color.FgCyan, "Current Configuration:"))
	fmt.Fprintf(m.out, "  Target Directory: %s [%s]\n", orUnset(s.TargetDir), m.folderStatus(s.abs(s.TargetDir)))
	fmt.Fprintf(m.out, "  Blog Folder Directory: %s [%s]\n", orUnset(s.BlogPostDir), m.folderStatus(s.abs(s.BlogPostDir)))
	fmt.Fprintf(m.out, "  Blog Folder Name: %s [%s]\n", orUnset(s.BlogFolderName), m.validity(s.BlogFolderName, "Folder Name"))
	fmt.Fprintf(m.out, "  Manifest Name: %s [%s]\n\n", orUnset(s.ManifestName), m.validity(s.ManifestName, "Manifest Name"))
}

func (m *Menu) showMenu() {
	fmt.Fprintln(m.out, m.paint(color.FgCyan, "Select Manifest Generator Mode:"))
	fmt.Fprintln(m.out, "1. Default")
	fmt.Fprintln(m.out, "2. Custom Blog Folder Name")
	fmt.Fprintln(m.out, "3. Specify Target Directory")
	fmt.Fprintln(m.out, "4. Specify Blog Folder Directory")
	fmt.Fprintln(m.out, "5. Specify Manifest File Name")
	fmt.Fprintln(m.out, "6. Generate Manifest")
	fmt.Fprintln(m.out, "7. Exit")
	fmt.Fprint(m.out, "Enter option: ")
}

func (m *Menu) folderStatus(dir string) string {
	if dir != "" && m.fs != nil {
		if info, err := m.fs.Stat(dir); err == nil && info.IsDir() {
			return m.paint(color.FgGreen, "Exists")
		} else if err != nil && !os.IsNotExist(err) {
			return m.paint(color.FgRed, "Inaccessible")
		}
	}
	return m.paint(color.FgYellow, "Does Not Exist")
}

func (m *Menu) validity(value, what string) string {
	if strings.TrimSpace(value) == "" {
		return m.paint(color.FgRed, "Invalid "+what)
	}
	return m.paint(color.FgGreen, "Valid "+what)
}

func (m *Menu) paint(attr color.Attribute, s string) string {
	if !m.useColors {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}

func orUnset(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
