package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Logged in as", user.Email, "("+string(user.Role)+")")
	return nil
}

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	roleInput, err := GetSimpleText(a.reader, "Role (candidate/recruiter)", a.out)
	if err != nil {
		return err
	}
	role, err := models.ParseRole(roleInput)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, name, email, password, role); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Registered. You can login now.")
	return nil
}

// WhoAmI prints the cached user plus whatever the access token discloses
// about session expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	user, ok := a.store.User()
	if !ok {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s (%s), id %s", user.Email, user.Role, user.ID))

	if claims, ok := a.gateway.SessionClaims(); ok {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			printlnFn("Session valid until", exp.Time.Format(time.RFC1123))
		}
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	a.auth.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}
