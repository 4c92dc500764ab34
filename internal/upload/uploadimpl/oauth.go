package uploadimpl

import (
	"context"
	"net/http"

	"github.com/orgball2608/motivate-ai/internal/authflow"
	"github.com/orgball2608/motivate-ai/internal/domain"
	"github.com/orgball2608/motivate-ai/internal/upload"
	"github.com/orgball2608/motivate-ai/pkg/errors"
	"golang.org/x/oauth2"
)

// oauthFlow runs the authorization code grant through the broker.
type oauthFlow struct {
	platform   domain.Platform
	conf       *oauth2.Config
	authParams []oauth2.AuthCodeOption
	broker     *authflow.Broker
	httpClient *http.Client
}

func (f *oauthFlow) run(ctx context.Context, present upload.Presenter) (*oauth2.Token, error) {
	if f.conf.ClientID == "" || f.conf.ClientSecret == "" {
		return nil, errors.Configuration(f.platform.String() + " OAuth client is not configured")
	}

	h := f.broker.Begin(f.platform)
	present(f.conf.AuthCodeURL(h.State, f.authParams...))

	code, err := h.Wait(ctx)
	if err != nil {
		return nil, err
	}

	tok, err := f.conf.Exchange(f.exchangeContext(ctx), code)
	if err != nil {
		return nil, errors.Auth("token exchange failed", err)
	}
	return tok, nil
}

func (f *oauthFlow) exchangeContext(ctx context.Context) context.Context {
	if f.httpClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, f.httpClient)
}

// bearerClient returns an HTTP client that signs requests with accessToken.
func bearerClient(base *http.Client, accessToken string) *http.Client {
	var rt http.RoundTripper
	if base != nil {
		rt = base.Transport
	}
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}),
			Base:   rt,
		},
	}
}
