package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Keys of a profile section in the credentials file.
const (
	UserKey     = "user"
	PasswordKey = "password"
	ServerKey   = "server"
)

// Credentials are the NDEx account settings read from one profile section.
type Credentials struct {
	User     string
	Password string
	// Server is a hostname without scheme, e.g. public.ndexbio.org.
	Server string
}

// ReadCredentials loads the profile section of an INI credentials file:
//
//	[profile]
//	user = <NDEx username>
//	password = <NDEx password>
//	server = <NDEx server, no scheme>
func ReadCredentials(path, profile string) (Credentials, error) {
	f, err := ini.Load(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("load credentials file %s: %w", path, err)
	}
	section, err := f.GetSection(profile)
	if err != nil {
		return Credentials{}, fmt.Errorf("credentials file %s has no [%s] section: %w", path, profile, err)
	}
	creds := Credentials{}
	for _, key := range []struct {
		name string
		dest *string
	}{
		{UserKey, &creds.User},
		{PasswordKey, &creds.Password},
		{ServerKey, &creds.Server},
	} {
		k, err := section.GetKey(key.name)
		if err != nil {
			return Credentials{}, fmt.Errorf("credentials section [%s] missing key %q: %w", profile, key.name, err)
		}
		*key.dest = k.String()
	}
	return creds, nil
}
