package model

// ExecutionProfile is the optional runtime profile emitted by a static
// profiler producer. The engine only summarizes it into the pack; it never
// derives verification state from it.
type ExecutionProfile struct {
	RunCommand      string         `json:"run_command,omitempty"`
	Language        string         `json:"language,omitempty"`
	PortBinding     *PortBinding   `json:"port_binding,omitempty"`
	RequiredSecrets []SecretRef    `json:"required_secrets,omitempty"`
	ExternalAPIs    []ExternalAPI  `json:"external_apis,omitempty"`
	Observability   *Observability `json:"observability,omitempty"`
	Limitations     []string       `json:"limitations,omitempty"`
}

// PortBinding describes how the target binds its listening port.
type PortBinding struct {
	Port               int          `json:"port,omitempty"`
	BindsAllInterfaces bool         `json:"binds_all_interfaces,omitempty"`
	UsesEnvPort        bool         `json:"uses_env_port,omitempty"`
	Evidence           EvidenceList `json:"evidence,omitempty"`
}

// SecretRef names a required secret and where it is referenced. Values are
// never present anywhere in the pipeline, only names.
type SecretRef struct {
	Name         string       `json:"name"`
	ReferencedIn EvidenceList `json:"referenced_in,omitempty"`
}

// ExternalAPI records an external service the target references.
type ExternalAPI struct {
	API           string   `json:"api"`
	EvidenceFiles []string `json:"evidence_files,omitempty"`
}

// Observability captures logging/health-check findings from the profiler.
type Observability struct {
	Logging        string       `json:"logging,omitempty"`
	HealthEndpoint string       `json:"health_endpoint,omitempty"`
	Evidence       EvidenceList `json:"evidence,omitempty"`
}

// Coverage is the scan-coverage artifact from the indexing producer.
type Coverage struct {
	Mode    string `json:"mode,omitempty"`
	RunID   string `json:"run_id,omitempty"`
	Scanned int    `json:"scanned,omitempty"`
	Skipped int    `json:"skipped,omitempty"`
}
