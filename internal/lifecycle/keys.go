package lifecycle

import "strings"

// profileEnvKeys lists the .env key prefixes each profile owns, including
// prefixes written by legacy releases under old profile names. Removal strips
// any key equal to an entry or starting with entry + "_".
var profileEnvKeys = map[string][]string{
	"kaspa-node":              {"KASPA_NODE"},
	"kaspa-archive-node":      {"KASPA_ARCHIVE"},
	"indexer-services":        {"INDEXER", "KASPLEX"},
	"kaspa-user-applications": {"APPS", "EXPLORER"},
	"mining":                  {"MINING", "STRATUM"},
	"dashboard":               {"DASHBOARD"},
}

// keyOwner maps an env key to the profile that owns it, by longest prefix
// match, for tagging configuration diffs. Empty when no profile claims it.
func keyOwner(key string) string {
	owner := ""
	longest := 0
	for profileID, prefixes := range profileEnvKeys {
		for _, prefix := range prefixes {
			if (key == prefix || strings.HasPrefix(key, prefix+"_")) && len(prefix) > longest {
				owner = profileID
				longest = len(prefix)
			}
		}
	}
	return owner
}

// DataType describes one kind of persistent data a profile accumulates,
// shown to the user when deciding what a removal should destroy.
type DataType struct {
	Type        string
	Description string
	SizeRange   string
	Critical    bool
}

// ProfileData lists the data types a profile accumulates; empty for unknown
// profiles.
func ProfileData(profileID string) []DataType {
	return append([]DataType{}, profileDataTypes[profileID]...)
}

// profileDataTypes is the static per-profile data inventory.
var profileDataTypes = map[string][]DataType{
	"kaspa-node": {
		{Type: "node-database", Description: "Pruned block and UTXO database", SizeRange: "50-100 GB", Critical: false},
	},
	"kaspa-archive-node": {
		{Type: "archive-database", Description: "Full historical block database", SizeRange: "500+ GB", Critical: true},
	},
	"indexer-services": {
		{Type: "indexer-database", Description: "PostgreSQL database of indexed chain data", SizeRange: "100-400 GB", Critical: true},
	},
	"kaspa-user-applications": {
		{Type: "app-data", Description: "Explorer cache and social app content", SizeRange: "1-10 GB", Critical: false},
	},
	"mining": {
		{Type: "share-logs", Description: "Stratum bridge share and payout logs", SizeRange: "under 1 GB", Critical: false},
	},
	"dashboard": {
		{Type: "dashboard-settings", Description: "Saved dashboard layout and preferences", SizeRange: "under 1 GB", Critical: false},
	},
}
