package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/ooakt0/fyi-bolt-sub000/internal/client/api"
)

func (a *App) Register(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	name, err := GetSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	role, err := GetSimpleText(a.reader, "Enter role (creator/investor, empty for investor)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	user, err := a.api.Register(ctx, email, name, password, role)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return
	}

	log.Printf("Registered %s (%s), now log in", user.Email, user.Role)
}

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.api.Login(ctx, email, password); err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			log.Printf("Server unavailable: %s", err.Error())
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return
	}

	a.userEmail = email
	log.Printf("Login successful")
}

func (a *App) Logout() {
	a.api.Logout()
	a.userEmail = ""
	log.Printf("Logged out")
}
