package cli

import (
	"context"
)

// Login prompts for a credential pair and opens the editing session. A match
// triggers the initial load of every kind.
func (a *App) Login(ctx context.Context) error {
	identity, err := GetSimpleText(a.reader, "Identity", a.out)
	if err != nil {
		return err
	}

	secret, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, identity, secret); err != nil {
		printlnFn("Login failed:", err)
		return err
	}

	printlnFn("Welcome,", a.session.Identity())
	return nil
}

// Logout closes the editing session and discards all of its state.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// Upload requests a presigned PUT URL for a gallery photo and prints it
// together with the matching GET link to paste into an album form.
func (a *App) Upload(ctx context.Context) error {
	putURL, key, err := a.media.GetPresignedPutURL(ctx)
	if err != nil {
		printlnFn("Upload URL error:", err)
		return err
	}

	getURL, err := a.media.GetPresignedGetURL(ctx, key)
	if err != nil {
		printlnFn("Download URL error:", err)
		return err
	}

	printlnFn("Upload your photo with: curl -X PUT --upload-file photo.jpg '" + putURL + "'")
	printlnFn("Then paste this link into the album form:", getURL)
	return nil
}
