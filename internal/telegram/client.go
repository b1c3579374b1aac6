package telegram

import (
	"context"
	"fmt"

	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
)

func (a *Account) newClient() *telegram.Client {
	return telegram.NewClient(a.APIID, a.APIHash, telegram.Options{
		SessionStorage: &sessionStorage{env: a.env},
	})
}

// Verify reports whether the stored session is still authorized with
// Telegram. A missing session string short-circuits without connecting.
func (a *Account) Verify(ctx context.Context) (bool, error) {
	if !a.HasSession() {
		return false, nil
	}
	client := a.newClient()
	var authorized bool
	err := client.Run(ctx, func(ctx context.Context) error {
		status, err := client.Auth().Status(ctx)
		if err != nil {
			return err
		}
		authorized = status.Authorized
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("checking session: %w", err)
	}
	return authorized, nil
}

// Login runs the interactive authentication flow for the account's number.
// The resulting session is persisted through the session storage as a side
// effect of the flow.
func (a *Account) Login(ctx context.Context, user auth.UserAuthenticator) error {
	client := a.newClient()
	flow := auth.NewFlow(user, auth.SendCodeOptions{})
	err := client.Run(ctx, func(ctx context.Context) error {
		return client.Auth().IfNecessary(ctx, flow)
	})
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}
	return nil
}

// Logout terminates the session on Telegram's side and clears the stored
// session string. ErrNoSession is returned when nothing is stored.
func (a *Account) Logout(ctx context.Context) error {
	if !a.HasSession() {
		return ErrNoSession
	}
	client := a.newClient()
	err := client.Run(ctx, func(ctx context.Context) error {
		_, err := client.API().AuthLogOut(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	return a.ClearSession()
}
