// Package config holds the run options and the NDEx credentials file reader.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// ConfigFileName is the default credentials file looked up under the user's
// home directory when --conf is unset.
const ConfigFileName = ".ndexutils.conf"

// DefaultHierarchy is the NDEx id of the published NeST hierarchy.
const DefaultHierarchy = "274fcd6c-1adc-11ea-a741-0660b7976219"

const (
	defaultHiViewLink = "http://hiview.ucsd.edu/274fcd6c-1adc-11ea-a741-0660b7976219?type=test&server=https://test.ndexbio.edu"
	defaultCCMILink   = "https://ccmi.org/nest"
)

// Options are the resolved command-line options for one run. Defaults come
// from NESTLOADER_* environment variables with hardcoded fallbacks; flags
// override both.
type Options struct {
	Profile     string
	ConfPath    string
	Hierarchy   string
	IASScore    string
	MaxSize     int
	Visibility  string
	DryRun      bool
	TempDir     string
	StylePath   string
	HiViewLink  string
	CCMILink    string
	NamePrefix  string
	Verbose     int
	ShowVersion bool
}

// countFlag implements a repeatable -v flag.
type countFlag int

func (c *countFlag) String() string { return strconv.Itoa(int(*c)) }

func (c *countFlag) IsBoolFlag() bool { return true }

func (c *countFlag) Set(s string) error {
	if s == "false" {
		return nil
	}
	*c++
	return nil
}

// ParseArgs parses args (without the program name) into Options.
func ParseArgs(name string, args []string) (Options, error) {
	opts := Options{}
	verbose := countFlag(0)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&opts.Profile, "profile", getenv("NESTLOADER_PROFILE", "ndexnestloader"),
		"section of the credentials file holding NDEx user, password and server")
	fs.StringVar(&opts.ConfPath, "conf", getenv("NESTLOADER_CONF", ""),
		"credentials file to load (default ~/"+ConfigFileName+")")
	fs.StringVar(&opts.Hierarchy, "nest", getenv("NESTLOADER_NEST", DefaultHierarchy),
		"NDEx id of the NeST hierarchy whose assemblies are extracted")
	fs.StringVar(&opts.IASScore, "ias_score", getenv("NESTLOADER_IAS_SCORE", ""),
		"path or URL of the IAS score table (tab separated)")
	fs.IntVar(&opts.MaxSize, "maxsize", getenvInt("NESTLOADER_MAXSIZE", 100),
		"assemblies with more genes than this are skipped")
	fs.StringVar(&opts.Visibility, "visibility", getenv("NESTLOADER_VISIBILITY", "PUBLIC"),
		"visibility of newly created networks on NDEx (PUBLIC or PRIVATE)")
	fs.BoolVar(&opts.DryRun, "dryrun", false,
		"log create/update decisions without calling NDEx")
	fs.StringVar(&opts.TempDir, "tempdir", getenv("NESTLOADER_TEMPDIR", ""),
		"directory for the score table download (default: fresh temp dir, removed afterwards)")
	fs.StringVar(&opts.StylePath, "style", "",
		"CX2 file whose visual style overrides the built-in one")
	fs.StringVar(&opts.HiViewLink, "hiview_link", getenv("NESTLOADER_HIVIEW_LINK", defaultHiViewLink),
		"HiView URL added to each network description")
	fs.StringVar(&opts.CCMILink, "ccmi_link", getenv("NESTLOADER_CCMI_LINK", defaultCCMILink),
		"CCMI URL added to each network description")
	fs.StringVar(&opts.NamePrefix, "name_prefix", "NeST:",
		"only networks whose name starts with this prefix join the existing-network index (empty: all)")
	fs.Var(&verbose, "v", "increase log verbosity (repeatable)")
	fs.Var(&verbose, "verbose", "increase log verbosity (repeatable)")
	fs.BoolVar(&opts.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	opts.Verbose = int(verbose)
	return opts, nil
}

// Validate checks option values that the flag package cannot.
func (o Options) Validate() error {
	if o.Visibility != "PUBLIC" && o.Visibility != "PRIVATE" {
		return fmt.Errorf("visibility must be PUBLIC or PRIVATE, got %q", o.Visibility)
	}
	if _, err := uuid.Parse(o.Hierarchy); err != nil {
		return fmt.Errorf("nest id %q is not a valid network id: %w", o.Hierarchy, err)
	}
	if o.IASScore == "" {
		return fmt.Errorf("ias_score must be a local path or URL")
	}
	if o.MaxSize < 1 {
		return fmt.Errorf("maxsize must be positive, got %d", o.MaxSize)
	}
	return nil
}

// CredentialsPath resolves the credentials file path, falling back to the
// per-user default when --conf is unset.
func (o Options) CredentialsPath() (string, error) {
	if o.ConfPath != "" {
		return o.ConfPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ConfigFileName), nil
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
