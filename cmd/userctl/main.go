// Command userctl is a terminal front-end for the user management API.
// It drives the same client service a browser front-end would: list the
// users, fill in a form, create or edit, delete.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"userhub/internal/client"
	"userhub/internal/config"
)

func main() {
	cfg := config.Load()

	api := client.NewHTTPUserAPIClient(cfg.APIBaseURL)
	svc := client.NewUserService(api)
	form := client.NewUserFormState()

	fmt.Printf("Connected to %s\n", cfg.APIBaseURL)
	fmt.Println("Commands: list, create, edit <id>, delete <id>, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if form.IsEditing() {
			fmt.Printf("[editing %d] > ", *form.EditingID)
		} else {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			listUsers(svc)
		case "create":
			form.Reset()
			fillForm(scanner, form)
			submit(svc, form)
		case "edit":
			editUser(scanner, svc, form, fields)
		case "delete":
			deleteUser(svc, fields)
		case "quit", "exit":
			return
		default:
			fmt.Printf("Unknown command %q\n", fields[0])
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
}

func listUsers(svc *client.UserService) {
	users, err := svc.FetchUsers()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(users) == 0 {
		fmt.Println("No users")
		return
	}
	for _, u := range users {
		fmt.Printf("%4d  %-24s %s\n", u.ID, u.Name, u.Email)
	}
}

func editUser(scanner *bufio.Scanner, svc *client.UserService, form *client.UserFormState, fields []string) {
	if len(fields) < 2 {
		fmt.Println("Usage: edit <id>")
		return
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		fmt.Printf("Invalid id %q\n", fields[1])
		return
	}

	users, err := svc.FetchUsers()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for _, u := range users {
		if u.ID == id {
			// the stored password is never echoed back; it must be re-entered
			form.SetForEditing(u.ID, u.Name, u.Email, "")
			fillForm(scanner, form)
			submit(svc, form)
			return
		}
	}
	fmt.Printf("No user with id %d\n", id)
}

func deleteUser(svc *client.UserService, fields []string) {
	if len(fields) < 2 {
		fmt.Println("Usage: delete <id>")
		return
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		fmt.Printf("Invalid id %q\n", fields[1])
		return
	}
	if err := svc.DeleteUser(id); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Deleted")
}

func fillForm(scanner *bufio.Scanner, form *client.UserFormState) {
	form.Name = prompt(scanner, "Name", form.Name)
	form.Email = prompt(scanner, "Email", form.Email)
	form.Password = promptPassword()
}

// prompt reads one line, keeping the current value when the user just
// presses enter.
func prompt(scanner *bufio.Scanner, label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	if !scanner.Scan() {
		return current
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return current
	}
	return line
}

func promptPassword() string {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return ""
	}
	return string(password)
}

func submit(svc *client.UserService, form *client.UserFormState) {
	if err := svc.Submit(form); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Saved")
}
