package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// InteractiveCmd creates the interactive command: a read-eval loop over the
// other commands so the routine can be driven from one session.
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session",
		Long: `Start an interactive session where you can run multiple commands.
The session keeps running until you type 'exit' or 'quit'.

Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")
			return runSession(os.Stdin, sessionCommands(cmd.Parent()))
		},
	}
}

// sessionCommands collects the commands reachable from the session, excluding
// the session itself and cobra's built-ins.
func sessionCommands(root *cobra.Command) map[string]*cobra.Command {
	commands := make(map[string]*cobra.Command)
	for _, sub := range root.Commands() {
		switch sub.Name() {
		case "interactive", "completion", "help":
			continue
		}
		commands[sub.Name()] = sub
	}
	return commands
}

func runSession(in io.Reader, commands map[string]*cobra.Command) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		parts, err := splitCommandLine(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Printf("Error parsing command: %v\n", err)
			continue
		}
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "exit", "quit":
			fmt.Println("👋 Goodbye!")
			return nil
		case "help":
			printSessionHelp(commands)
			continue
		}

		target, ok := commands[parts[0]]
		if !ok {
			fmt.Printf("Unknown command: %s (type 'help' for available commands)\n", parts[0])
			continue
		}
		dispatch(target, parts[1:])
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}

// dispatch resolves args against target's subcommand tree and runs the found
// command's RunE directly, skipping Execute so the persistent pre-run does not
// rebuild the app on every line. Group commands without their own run
// function print their help instead.
func dispatch(target *cobra.Command, args []string) {
	target, args, err := target.Find(args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	target.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
		flag.Value.Set(flag.DefValue)
	})

	if err := target.ParseFlags(args); err != nil {
		fmt.Printf("Error parsing flags: %v\n", err)
		return
	}
	args = target.Flags().Args()

	if target.Args != nil {
		if err := target.Args(target, args); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	switch {
	case target.RunE != nil:
		if err := target.RunE(target, args); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	case target.Run != nil:
		target.Run(target, args)
	default:
		target.Help()
	}
}

func printSessionHelp(commands map[string]*cobra.Command) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nAvailable commands:")
	for _, name := range names {
		fmt.Printf("  %-34s %s\n", commands[name].Use, commands[name].Short)
	}
	fmt.Println("\n  help                               Show this help message")
	fmt.Println("  exit, quit                         Exit the interactive session")
}

// splitCommandLine splits a line into arguments, respecting single and double
// quotes.
func splitCommandLine(line string) ([]string, error) {
	var args []string
	var current strings.Builder
	var inQuote rune

	for _, r := range line {
		switch {
		case inQuote != 0:
			if r == inQuote {
				inQuote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			inQuote = r
		case unicode.IsSpace(r):
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if inQuote != 0 {
		return nil, fmt.Errorf("unclosed quote: %c", inQuote)
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args, nil
}
