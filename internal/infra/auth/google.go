// Package auth implements the Google OAuth login flow and the cookie
// sessions that guard the API. Protocol details live entirely in
// golang.org/x/oauth2; this package only maps the provider profile onto
// the local user record.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/bryanwahyu/ai-readiness/internal/domain/users"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleOAuth struct {
	cfg *oauth2.Config
}

func NewGoogle(clientID, clientSecret, redirectURL string) *GoogleOAuth {
	return &GoogleOAuth{cfg: &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}}
}

// AuthCodeURL returns the consent-screen redirect for the given CSRF state.
func (g *GoogleOAuth) AuthCodeURL(state string) string {
	return g.cfg.AuthCodeURL(state)
}

// FetchUser exchanges the callback code and loads the Google profile.
func (g *GoogleOAuth) FetchUser(ctx context.Context, code string) (*users.User, error) {
	tok, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange oauth code: %w", err)
	}

	resp, err := g.cfg.Client(ctx, tok).Get(userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch userinfo: status %d", resp.StatusCode)
	}

	var profile struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("provider returned no email")
	}

	return &users.User{
		Email:          profile.Email,
		DisplayName:    profile.Name,
		ProfilePicture: profile.Picture,
		Provider:       users.ProviderGoogle,
		GoogleID:       profile.ID,
		CreatedAt:      time.Now(),
	}, nil
}
