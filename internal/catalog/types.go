package catalog

// Service is one container inside a profile. Services with the same
// StartupOrder may come up concurrently; lower orders must be healthy first.
type Service struct {
	Name         string `yaml:"name"`
	Required     bool   `yaml:"required"`
	StartupOrder int    `yaml:"startup_order"`
	Description  string `yaml:"description"`
}

// Resources are sizing requirements in GB (memory, disk) and cores (CPU).
type Resources struct {
	MinMemory         float64 `yaml:"min_memory"`
	MinCPU            float64 `yaml:"min_cpu"`
	MinDisk           float64 `yaml:"min_disk"`
	RecommendedMemory float64 `yaml:"recommended_memory"`
	RecommendedCPU    float64 `yaml:"recommended_cpu"`
	RecommendedDisk   float64 `yaml:"recommended_disk"`
}

// Configuration describes the env keys a profile contributes to .env.
type Configuration struct {
	Required []string          `yaml:"required"`
	Optional []string          `yaml:"optional"`
	Defaults map[string]string `yaml:"defaults"`
}

// Profile is an installable unit of one or more co-located Docker services.
//
// Dependencies are auto-included into the resolved closure; Prerequisites must
// already be in the user's selection and are never auto-included.
type Profile struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`

	Services []Service `yaml:"services"`

	Dependencies      []string `yaml:"dependencies"`
	Prerequisites     []string `yaml:"prerequisites"`
	PrerequisitesMode string   `yaml:"prerequisites_mode"`
	Conflicts         []string `yaml:"conflicts"`

	Resources Resources `yaml:"resources"`
	Ports     []int     `yaml:"ports"`

	Configuration Configuration `yaml:"configuration"`

	PublicIndexerAvailable bool     `yaml:"public_indexer_available"`
	PublicIndexerURL       string   `yaml:"public_indexer_url"`
	EmbeddedDatabase       bool     `yaml:"embedded_database"`
	BundledServices        []string `yaml:"bundled_services"`
	IsBundle               bool     `yaml:"is_bundle"`
}

// Template is a named preset: a fixed profile list plus pre-filled config and
// display metadata. The custom-setup template is dynamic: its profile list is
// empty and filled in at use time.
type Template struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	UseCase     string `yaml:"use_case"`
	Icon        string `yaml:"icon"`
	SetupTime   string `yaml:"setup_time"`

	Tags     []string          `yaml:"tags"`
	Profiles []string          `yaml:"profiles"`
	Config   map[string]string `yaml:"config"`

	Resources Resources `yaml:"resources"`
	Features  []string  `yaml:"features"`
	Benefits  []string  `yaml:"benefits"`

	Dynamic bool `yaml:"dynamic"`
}

// SystemResources is what the host actually has, for recommendation scoring.
type SystemResources struct {
	MemoryGB float64
	CPUCores float64
	DiskGB   float64
}
