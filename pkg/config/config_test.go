package config

import (
	"net/url"
	"testing"
)

func TestPoolURLEscapesCredentials(t *testing.T) {
	c := &Config{}
	c.Postgres.Host = "db.internal"
	c.Postgres.Port = 5432
	c.Postgres.User = "motivate"
	c.Postgres.Pass = "p@ss:w/rd?#"
	c.Postgres.Name = "motivate"
	c.Postgres.SslMode = "disable"

	u, err := url.Parse(c.GetPoolURL())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	pass, _ := u.User.Password()
	if u.User.Username() != "motivate" || pass != "p@ss:w/rd?#" {
		t.Fatalf("credentials did not round trip: %q %q", u.User.Username(), pass)
	}
	if u.Host != "db.internal:5432" || u.Path != "/motivate" || u.Query().Get("sslmode") != "disable" {
		t.Fatalf("unexpected url %s", u)
	}
	if c.GetDSN() != c.GetPoolURL() {
		t.Fatal("migrations and pool must target the same database")
	}
}

func TestOrigins(t *testing.T) {
	c := &Config{}
	c.App.AllowedOrigins = " http://a.test, ,http://b.test "

	got := c.Origins()
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", got)
	}
}
