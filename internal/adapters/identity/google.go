package identity

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleOAuth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/gal07/ramadhan-tracker/internal/core/services"
)

var _ services.GoogleVerifier = (*GoogleVerifier)(nil)

// GoogleVerifier runs the authorization-code flow: exchange the code
// the frontend obtained, then read the account profile with the
// resulting token.
type GoogleVerifier struct {
	conf *oauth2.Config
}

func NewGoogleVerifier(clientID, clientSecret, redirectURL string) *GoogleVerifier {
	return &GoogleVerifier{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
				"openid",
			},
			Endpoint: google.Endpoint,
		},
	}
}

func (v *GoogleVerifier) Verify(ctx context.Context, code string) (*services.GoogleProfile, error) {
	token, err := v.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	oauth2Service, err := googleOAuth2.NewService(ctx,
		option.WithTokenSource(v.conf.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize google auth service: %w", err)
	}

	userInfo, err := oauth2Service.Userinfo.Get().Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google user info: %w", err)
	}

	return &services.GoogleProfile{
		Email:   userInfo.Email,
		Name:    userInfo.Name,
		Picture: userInfo.Picture,
	}, nil
}
