// Package generator turns a validated profile selection plus configuration
// into the .env file and docker-compose.yml that materialize it.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kaspa-aio/kaspactl/internal/catalog"
	"github.com/kaspa-aio/kaspactl/internal/resolver"
)

// GenerateConfig builds the full configuration for a profile set: profile
// defaults fill unset keys, required secret-like keys get generated values,
// and base overrides win over everything.
func GenerateConfig(profileIDs []string, base map[string]string) map[string]string {
	cfg := make(map[string]string)

	for _, id := range resolver.Resolve(profileIDs) {
		p, _ := catalog.GetProfile(id)
		for k, v := range p.Configuration.Defaults {
			cfg[k] = v
		}
		for _, k := range p.Configuration.Required {
			if _, ok := base[k]; ok {
				continue
			}
			if _, ok := cfg[k]; !ok && isSecretKey(k) {
				cfg[k] = GeneratePassword(24)
			}
		}
	}

	for k, v := range base {
		cfg[k] = v
	}
	return cfg
}

func isSecretKey(key string) bool {
	return strings.HasSuffix(key, "_PASSWORD") || strings.HasSuffix(key, "_SECRET") || strings.HasSuffix(key, "_TOKEN")
}

// GenerateEnvFile renders cfg as .env content, grouped per profile with a
// comment header, keys sorted inside each group. Output is deterministic for
// identical input so regenerated files diff cleanly.
func GenerateEnvFile(cfg map[string]string, profileIDs []string) string {
	var b strings.Builder
	b.WriteString("# Generated by kaspactl. Edit values, not structure; regeneration preserves keys only.\n")

	written := make(map[string]bool, len(cfg))
	for _, id := range resolver.Resolve(profileIDs) {
		p, _ := catalog.GetProfile(id)

		var keys []string
		for _, k := range profileKeys(p) {
			if _, ok := cfg[k]; ok && !written[k] {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			continue
		}
		sort.Strings(keys)

		b.WriteString("\n# " + p.Name + "\n")
		for _, k := range keys {
			b.WriteString(k + "=" + quoteIfNeeded(cfg[k]) + "\n")
			written[k] = true
		}
	}

	var rest []string
	for k := range cfg {
		if !written[k] {
			rest = append(rest, k)
		}
	}
	if len(rest) > 0 {
		sort.Strings(rest)
		b.WriteString("\n# Other\n")
		for _, k := range rest {
			b.WriteString(k + "=" + quoteIfNeeded(cfg[k]) + "\n")
		}
	}

	return b.String()
}

// profileKeys lists every env key a profile owns: defaults plus declared
// required and optional keys.
func profileKeys(p catalog.Profile) []string {
	seen := make(map[string]bool)
	var keys []string
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range p.Configuration.Defaults {
		add(k)
	}
	for _, k := range p.Configuration.Required {
		add(k)
	}
	for _, k := range p.Configuration.Optional {
		add(k)
	}
	return keys
}

func quoteIfNeeded(v string) string {
	if strings.ContainsAny(v, " #") {
		return "\"" + v + "\""
	}
	return v
}

// SaveEnvFile writes content to path, creating parent directories as needed.
func SaveEnvFile(content, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("write env file: %w", err)
	}
	return nil
}
