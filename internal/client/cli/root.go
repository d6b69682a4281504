package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userEmail != "" {
		return fmt.Sprintf("(%s)", a.userEmail)
	}
	return ""
}

// Run starts a simple read-eval-print loop. Command handlers report their own
// errors; the loop itself only parses and dispatches, and exits on EOF or
// "exit"/"quit".
func (a *App) Run(ctx context.Context) {
	fmt.Println("Idea Vault CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("vault %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: ideas, newidea, files <idea-id>, images <idea-id>, upload <idea-id>, uploadimage <idea-id>, privacy <file|image> <id> <on|off>, delimage <id>, show <file|image> <id>, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, ideas, files <idea-id>, images <idea-id>, show <file|image> <id>, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout()
		case "ideas":
			a.ListIdeas(ctx)
		case "newidea":
			a.CreateIdea(ctx)
		case "files":
			if len(args) == 0 {
				fmt.Println("Usage: files <idea-id>")
				continue
			}
			a.ListFiles(ctx, args[0])
		case "images":
			if len(args) == 0 {
				fmt.Println("Usage: images <idea-id>")
				continue
			}
			a.ListImages(ctx, args[0])
		case "upload":
			if len(args) == 0 {
				fmt.Println("Usage: upload <idea-id>")
				continue
			}
			a.UploadFile(ctx, args[0])
		case "uploadimage":
			if len(args) == 0 {
				fmt.Println("Usage: uploadimage <idea-id>")
				continue
			}
			a.UploadImage(ctx, args[0])
		case "privacy":
			if len(args) != 3 {
				fmt.Println("Usage: privacy <file|image> <id> <on|off>")
				continue
			}
			a.SetPrivacy(ctx, args[0], args[1], args[2])
		case "delimage":
			if len(args) == 0 {
				fmt.Println("Usage: delimage <id>")
				continue
			}
			a.DeleteImage(ctx, args[0])
		case "show":
			if len(args) != 2 {
				fmt.Println("Usage: show <file|image> <id>")
				continue
			}
			a.Show(ctx, args[0], args[1])
		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
