package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// InitFirebase initializes and returns a Firebase app instance. When a
// service account path is given it is used directly; otherwise default
// credentials apply (useful for Google Cloud deployment).
func InitFirebase(projectID, serviceAccountPath string) (*firebase.App, error) {
	ctx := context.Background()

	config := &firebase.Config{ProjectID: projectID}

	var (
		app *firebase.App
		err error
	)
	if serviceAccountPath != "" {
		app, err = firebase.NewApp(ctx, config, option.WithCredentialsFile(serviceAccountPath))
	} else {
		app, err = firebase.NewApp(ctx, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	if _, err := app.Auth(ctx); err != nil {
		return nil, fmt.Errorf("failed to get Firebase Auth client: %w", err)
	}

	return app, nil
}

// GetAuthClient returns a Firebase Auth client from the app
func GetAuthClient(app *firebase.App) (*auth.Client, error) {
	ctx := context.Background()
	return app.Auth(ctx)
}
