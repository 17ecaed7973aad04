// Package repl provides the interactive chat shell.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thoughtful-ai/support-agent/engine/model"
	"github.com/thoughtful-ai/support-agent/sdk/agent"
)

const welcome = `Hello! I'm here to help you learn about Thoughtful AI's automation agents.
Ask me about EVA, CAM, PHIL, or any general question you might have.
Type /help for commands, /quit to exit.`

// REPL is the interactive chat loop. One query is fully resolved before
// the next is read.
type REPL struct {
	agent      *agent.Agent
	transcript *agent.Transcript
	commands   map[string]Command
	in         io.Reader
	ctx        context.Context
	cancel     context.CancelFunc
}

// Command represents a slash command.
type Command struct {
	Name        string
	Description string
	Handler     func(args string) error
}

// New creates a REPL around an agent, with built-in commands.
func New(a *agent.Agent) *REPL {
	ctx, cancel := context.WithCancel(context.Background())
	r := &REPL{
		agent:      a,
		transcript: agent.NewTranscript(),
		commands:   make(map[string]Command),
		in:         os.Stdin,
		ctx:        ctx,
		cancel:     cancel,
	}
	r.registerBuiltins()
	return r
}

func (r *REPL) registerBuiltins() {
	r.Register(Command{
		Name: "/help", Description: "Show available commands",
		Handler: func(_ string) error {
			fmt.Println("Available commands:")
			for _, c := range r.commands {
				fmt.Printf("  %-12s %s\n", c.Name, c.Description)
			}
			return nil
		},
	})
	r.Register(Command{
		Name: "/history", Description: "Show the session transcript",
		Handler: func(_ string) error {
			turns := r.transcript.Turns()
			if len(turns) == 0 {
				fmt.Println("No messages yet.")
				return nil
			}
			for _, turn := range turns {
				line := fmt.Sprintf("  [%s] %s: %s", turn.At.Format("15:04:05"), turn.Role, turn.Text)
				if turn.Source != "" {
					line += fmt.Sprintf("  (%s)", turn.Source)
				}
				fmt.Println(line)
			}
			return nil
		},
	})
	r.Register(Command{
		Name: "/examples", Description: "Show example questions",
		Handler: func(_ string) error {
			fmt.Println("Example questions:")
			for _, e := range r.agent.KB.Entries() {
				fmt.Printf("  - %s\n", e.Question)
			}
			fmt.Println("  - What is machine learning?")
			return nil
		},
	})
	r.Register(Command{
		Name: "/clear", Description: "Clear the session transcript",
		Handler: func(_ string) error {
			r.transcript.Clear()
			fmt.Println("Chat cleared. How can I help you?")
			return nil
		},
	})
	r.Register(Command{
		Name: "/quit", Description: "Exit the chat",
		Handler: func(_ string) error {
			r.cancel()
			return nil
		},
	})
}

// Register adds a slash command.
func (r *REPL) Register(c Command) {
	r.commands[c.Name] = c
}

// Start begins the interactive loop. It returns when input is exhausted
// or /quit is entered; query errors never terminate the loop.
func (r *REPL) Start() error {
	fmt.Println(welcome)
	if !r.agent.Configured() {
		fmt.Println("(no API key configured: I can only answer predefined questions)")
	}

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Println("Please enter a question.")
			continue
		}

		if strings.HasPrefix(line, "/") {
			r.dispatch(line)
			select {
			case <-r.ctx.Done():
				fmt.Println("Goodbye.")
				return nil
			default:
			}
			continue
		}

		r.respond(line)
	}
	return scanner.Err()
}

func (r *REPL) dispatch(line string) {
	parts := strings.SplitN(line, " ", 2)
	cmdName := parts[0]
	args := ""
	if len(parts) > 1 {
		args = parts[1]
	}
	cmd, ok := r.commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmdName)
		return
	}
	if err := cmd.Handler(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// respond resolves one query and appends both turns to the transcript.
func (r *REPL) respond(query string) {
	r.transcript.Append(model.RoleUser, query, "")

	resp, err := r.agent.Respond(r.ctx, query)
	if err != nil {
		msg := agent.ErrorMessage(err)
		fmt.Println(msg)
		r.transcript.Append(model.RoleAssistant, msg, agent.SourceError)
		return
	}

	fmt.Println(resp.Text)
	fmt.Printf("  [source: %s]\n", caption(resp))
	r.transcript.Append(model.RoleAssistant, resp.Text, resp.Source)
}

// caption renders the source line shown under each answer.
func caption(resp *agent.Response) string {
	if resp.Source == agent.SourcePredefined {
		return fmt.Sprintf("predefined (match: %.0f%%)", resp.Score)
	}
	return resp.Source
}
