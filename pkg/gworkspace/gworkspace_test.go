package gworkspace

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2/google"
	"gopkg.in/gomail.v2"
)

func TestCredentials_NeverSerialise(t *testing.T) {
	creds := WrapCredentials(&google.Credentials{ProjectID: "p"}, "service_account", "/secret/sa.json", FormScopes...)

	_, err := json.Marshal(struct {
		C *Credentials `json:"credentials"`
	}{creds})
	assert.Error(t, err)
	assert.Equal(t, "gworkspace.Credentials(service_account)", fmt.Sprint(creds))
	assert.Equal(t, FormScopes, creds.Scopes())
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "https://docs.google.com/forms/d/abc/edit", EditURL("abc"))
	assert.Equal(t, "https://docs.google.com/forms/d/abc/viewform", ViewURL("abc"))
}

func TestEncodeRaw(t *testing.T) {
	m := gomail.NewMessage()
	m.SetHeader("From", "a@example.com")
	m.SetHeader("To", "b@example.com")
	m.SetHeader("Subject", "Nouveau Quiz: Go")
	m.SetBody("text/plain", "hello")

	raw, err := EncodeRaw(m)
	require.NoError(t, err)

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "To: b@example.com")
	assert.Contains(t, string(decoded), "hello")
}
