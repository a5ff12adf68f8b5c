package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// MissingCommits lists commits known to be absent from a sub repository, keyed
// by repository id. It is carried through untouched.
type MissingCommits map[string][]string

// Settings is the configuration of one top repository and its sub repositories.
type Settings struct {
	MissingCommits MissingCommits
	TopFetchURL    string
	TopPushURL     string
	Repos          []RepoConfig
}

// RepoConfig describes one configured sub repository.
type RepoConfig struct {
	ID       string
	Name     string
	Enabled  bool
	RawURLs  []string // every known spelling of the repository URL, first seen first
	FetchURL string
	PushURL  string
}

// Repo returns the configured repository with the given id.
func (it *Settings) Repo(id string) (*RepoConfig, bool) {
	for i := range it.Repos {
		if it.Repos[i].ID == id {
			return &it.Repos[i], true
		}
	}
	return nil, false
}

// URLs returns every URL the repository can be referred to by.
func (it *RepoConfig) URLs() []string {
	urls := make([]string, 0, len(it.RawURLs)+2) //nolint:mnd // fetch and push URLs
	urls = append(urls, it.FetchURL, it.PushURL)
	return append(urls, it.RawURLs...)
}

type settingsFile struct {
	Top struct {
		FetchURL string `yaml:"fetch_url"`
		PushURL  string `yaml:"push_url"`
	} `yaml:"top"`
	Repos          []repoConfigFile `yaml:"repos"`
	MissingCommits MissingCommits   `yaml:"missing_commits"`
}

type repoConfigFile struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Enabled  *bool    `yaml:"enabled"`
	URLs     []string `yaml:"urls"`
	FetchURL string   `yaml:"fetch_url"`
	PushURL  string   `yaml:"push_url"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and validates a configuration file. A ".env" file next to
// the working directory is loaded first so ${VAR} placeholders can use it.
func NewSettings(path string) (*Settings, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	return ParseSettings(data)
}

// ParseSettings decodes a YAML configuration and fills in the defaults.
func ParseSettings(data []byte) (*Settings, error) {
	var raw settingsFile
	if unmarshalErr := yaml.Unmarshal(data, &raw); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings := &Settings{
		MissingCommits: raw.MissingCommits,
		TopFetchURL:    expandEnv(raw.Top.FetchURL),
		TopPushURL:     expandEnv(raw.Top.PushURL),
	}
	if settings.TopPushURL == "" {
		settings.TopPushURL = settings.TopFetchURL
	}

	for _, repo := range raw.Repos {
		settings.Repos = append(settings.Repos, newRepoConfig(repo, settings.TopFetchURL))
	}

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".toprepo.yaml",
		".toprepo.yml",
		"toprepo.yaml",
		"toprepo.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func newRepoConfig(raw repoConfigFile, topFetchURL string) RepoConfig {
	repo := RepoConfig{
		ID:       raw.ID,
		Name:     raw.Name,
		Enabled:  raw.Enabled == nil || *raw.Enabled,
		FetchURL: expandEnv(raw.FetchURL),
		PushURL:  expandEnv(raw.PushURL),
	}
	if repo.Name == "" {
		repo.Name = repo.ID
	}

	for _, url := range raw.URLs {
		url = expandEnv(url)
		if url != "" && !slices.Contains(repo.RawURLs, url) {
			repo.RawURLs = append(repo.RawURLs, url)
		}
	}

	if repo.FetchURL == "" && len(repo.RawURLs) > 0 {
		repo.FetchURL = JoinSubmoduleURL(topFetchURL, repo.RawURLs[0])
	}
	if repo.PushURL == "" {
		repo.PushURL = repo.FetchURL
	}
	return repo
}

// expandEnv expands ${VAR} references, warning about unset variables.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks for required configuration values.
func validate(settings *Settings) error {
	if settings.TopFetchURL == "" {
		return errors.New("top.fetch_url is required")
	}

	seen := make(map[string]bool, len(settings.Repos))
	for i, repo := range settings.Repos {
		if repo.ID == "" {
			return fmt.Errorf("repos[%d].id is required", i)
		}
		if seen[repo.ID] {
			return fmt.Errorf("repos[%d].id %q is declared more than once", i, repo.ID)
		}
		seen[repo.ID] = true
		if repo.FetchURL == "" {
			return fmt.Errorf(
				"repos[%d] (%s) needs at least one entry in urls or a fetch_url",
				i, repo.ID,
			)
		}
	}

	return nil
}
