package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dromero87/superheroes-cli/internal/client/models"
	"github.com/dromero87/superheroes-cli/internal/client/services"
	"github.com/dromero87/superheroes-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// ask prompts for a field, offering current as the default kept on empty
// input. Defaults let a retried registration keep its previous values.
func (a *App) ask(prompt, current string) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	v, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// Register prompts for the full registration form and attempts to create an
// account. On a failed submit the entered fields (minus the password) are
// retained and offered as defaults on the next attempt; only a confirmed
// success resets them. Creating an account establishes no session; the
// user still logs in separately.
func (a *App) Register(ctx context.Context) error {
	form := models.RegistrationForm{}
	if a.regForm != nil {
		form = *a.regForm
	}

	var err error
	if form.Username, err = a.ask("Usuario", form.Username); err != nil {
		return err
	}
	if form.Email, err = a.ask("Email", form.Email); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	form.Password = string(password)
	common.WipeByteArray(password)

	if form.Name, err = a.ask("Nombre", form.Name); err != nil {
		return err
	}
	if form.Lastname, err = a.ask("Apellido", form.Lastname); err != nil {
		return err
	}

	if err := a.authService.Register(ctx, form); err != nil {
		retained := form
		retained.Password = ""
		a.regForm = &retained
		a.fail(ctx, err, msgRegisterFailed)
		return err
	}

	a.regForm = nil
	printlnFn(msgRegisterOK)
	return nil
}

// Login prompts for credentials and authenticates. Only a confirmed success
// sets the durable marker (inside the auth service); afterwards the profile
// is fetched once, best-effort, for the welcome line and the prompt.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Usuario", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.Login(ctx, userName, password); err != nil {
		a.fail(ctx, err, msgLoginFailed)
		return err
	}

	name, err := a.profileService.DisplayName(ctx)
	if err != nil || name == "" {
		name = services.AnonymousName
	}
	a.userName = name
	printlnFn("Bienvenido, " + name)
	return nil
}

// Logout asks the server to end the session. Local state changes only on a
// confirmed success; otherwise everything stays put so the user can retry.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.fail(ctx, err, msgLogoutFailed)
		return err
	}
	a.userName = ""
	printlnFn(msgLogoutOK)
	return nil
}
