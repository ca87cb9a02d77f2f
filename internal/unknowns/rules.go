// Package unknowns declares the operational-risk categories the engine
// cannot see from static claims alone, and the strict rules under which a
// category may be upgraded from UNKNOWN to VERIFIED.
package unknowns

import "regexp"

// Rule is one upgrade condition for a category. It fires only against a
// claim carrying hash-verified evidence whose path matches File, and, when
// Probe is set, whose statement contains the probe term (case-insensitive).
// Filename presence in the repo index alone never fires a rule.
type Rule struct {
	Artifact string
	File     *regexp.Regexp
	Probe    string
}

// Category is one fixed known-unknown category with its ordered rules.
type Category struct {
	ID          string
	Description string
	ResolveWith string
	Rules       []Rule
}

// Ruleset is the immutable category/rule table, compiled once at process
// start and injected into the engine by reference.
type Ruleset struct {
	categories []Category
}

// Categories returns the categories in their fixed declaration order.
func (rs *Ruleset) Categories() []Category {
	return rs.categories
}

// Len returns the number of categories.
func (rs *Ruleset) Len() int {
	return len(rs.categories)
}

// DefaultRuleset returns the v1 category and rule tables.
func DefaultRuleset() *Ruleset {
	return &Ruleset{categories: []Category{
		{
			ID:          "tls_termination",
			Description: "Whether TLS/SSL is terminated and how (reverse proxy, load balancer, application-level)",
			ResolveWith: "Add TLS config: k8s Ingress with tls section, nginx.conf with ssl_certificate, Caddyfile with tls directive, or Terraform aws_acm_certificate resource",
			Rules: []Rule{
				{Artifact: "k8s Ingress with TLS", File: regexp.MustCompile(`(?i)(^|/)ingress\.(ya?ml|json)$`), Probe: "tls"},
				{Artifact: "Terraform ACM certificate", File: regexp.MustCompile(`\.tf$`), Probe: "aws_acm_certificate"},
				{Artifact: "Caddyfile with TLS", File: regexp.MustCompile(`(^|/)Caddyfile$`)},
				{Artifact: "nginx SSL config", File: regexp.MustCompile(`(?i)(^|/)nginx\.conf$`), Probe: "ssl_certificate"},
			},
		},
		{
			ID:          "encryption_at_rest",
			Description: "Whether data at rest is encrypted (database, file storage, backups)",
			ResolveWith: "Add encryption config: Terraform aws_db_instance with storage_encrypted=true, k8s StorageClass with encrypted parameters, or pgcrypto extension usage",
			Rules: []Rule{
				{Artifact: "Terraform aws_db_instance with storage_encrypted", File: regexp.MustCompile(`\.tf$`), Probe: "storage_encrypted"},
				{Artifact: "k8s StorageClass with encryption", File: regexp.MustCompile(`(?i)(^|/)storageclass\.(ya?ml|json)$`), Probe: "encrypted"},
			},
		},
		{
			ID:          "secret_management",
			Description: "How secrets/credentials are stored, rotated, and accessed at runtime",
			ResolveWith: "Add secret management: k8s ExternalSecret/SealedSecret manifests, Vault agent config, or Terraform vault_generic_secret resources",
			Rules: []Rule{
				{Artifact: "k8s ExternalSecret manifest", File: regexp.MustCompile(`(?i)(^|/)externalsecrets?\.(ya?ml|json)$`)},
				{Artifact: "k8s SealedSecret manifest", File: regexp.MustCompile(`(?i)(^|/)sealedsecrets?\.(ya?ml|json)$`)},
				{Artifact: "Terraform vault_generic_secret", File: regexp.MustCompile(`\.tf$`), Probe: "vault_generic_secret"},
				{Artifact: "Vault agent config", File: regexp.MustCompile(`(?i)(^|/)vault-agent\.(hcl|json)$`)},
			},
		},
		{
			ID:          "deployment_topology",
			Description: "Production deployment architecture (containers, VMs, serverless, regions)",
			ResolveWith: "Add deployment artifacts: Dockerfile, docker-compose.yml, k8s Deployment manifests, Terraform main.tf, Helm Chart.yaml, or fly.toml",
			Rules: []Rule{
				{Artifact: "Dockerfile", File: regexp.MustCompile(`(^|/)Dockerfile$`)},
				{Artifact: "docker-compose.yml", File: regexp.MustCompile(`(?i)(^|/)docker-compose\.ya?ml$`)},
				{Artifact: "k8s Deployment manifest", File: regexp.MustCompile(`(?i)(^|/)deployment\.(ya?ml|json)$`)},
				{Artifact: "Terraform main.tf", File: regexp.MustCompile(`(^|/)main\.tf$`)},
				{Artifact: "Helm Chart.yaml", File: regexp.MustCompile(`(^|/)Chart\.yaml$`)},
				{Artifact: "fly.toml", File: regexp.MustCompile(`(^|/)fly\.toml$`)},
				{Artifact: "Procfile", File: regexp.MustCompile(`(^|/)Procfile$`)},
			},
		},
		{
			ID:          "runtime_iam",
			Description: "Identity and access management at runtime (service accounts, role-based access)",
			ResolveWith: "Add IAM config: k8s ServiceAccount/RBAC manifests, Terraform aws_iam_role resources, or OPA policy files",
			Rules: []Rule{
				{Artifact: "k8s ServiceAccount manifest", File: regexp.MustCompile(`(?i)(^|/)serviceaccount\.(ya?ml|json)$`)},
				{Artifact: "k8s RBAC manifest", File: regexp.MustCompile(`(?i)(^|/)(cluster)?role(binding)?\.(ya?ml|json)$`)},
				{Artifact: "Terraform IAM role", File: regexp.MustCompile(`\.tf$`), Probe: "aws_iam_role"},
				{Artifact: "OPA policy", File: regexp.MustCompile(`\.rego$`)},
			},
		},
		{
			ID:          "logging_sink",
			Description: "Where application and infrastructure logs are collected and retained",
			ResolveWith: "Add logging config: Fluentd/Logstash config files, k8s logging sidecar manifests, or Terraform CloudWatch log group resources",
			Rules: []Rule{
				{Artifact: "Fluentd config", File: regexp.MustCompile(`(?i)(^|/)fluent(d|bit)\.(conf|ya?ml)$`)},
				{Artifact: "Logstash config", File: regexp.MustCompile(`(?i)(^|/)logstash\.(conf|ya?ml)$`)},
				{Artifact: "Terraform CloudWatch log group", File: regexp.MustCompile(`\.tf$`), Probe: "aws_cloudwatch_log_group"},
			},
		},
		{
			ID:          "monitoring_alerting",
			Description: "Whether monitoring/alerting is configured (health checks, uptime, error rates)",
			ResolveWith: "Add monitoring config: Prometheus rules YAML, Grafana dashboard JSON, k8s ServiceMonitor manifests, Terraform CloudWatch alarm resources, or Sentry config",
			Rules: []Rule{
				{Artifact: "Prometheus rules", File: regexp.MustCompile(`(?i)(^|/)prometheus\.(ya?ml|rules)$`)},
				{Artifact: "k8s ServiceMonitor", File: regexp.MustCompile(`(?i)(^|/)servicemonitor\.(ya?ml|json)$`)},
				{Artifact: "Grafana dashboard", File: regexp.MustCompile(`(?i)(^|/).*grafana.*\.json$`)},
				{Artifact: "Terraform CloudWatch alarm", File: regexp.MustCompile(`\.tf$`), Probe: "aws_cloudwatch_metric_alarm"},
				{Artifact: "Sentry config", File: regexp.MustCompile(`(?i)(^|/)\.sentryclirc$|sentry\.(ya?ml|json|properties)$`)},
			},
		},
		{
			ID:          "backup_retention",
			Description: "Backup strategy, frequency, and retention policy for data stores",
			ResolveWith: "Add backup config: Terraform aws_backup_plan resources, k8s CronJob backup manifests, or pg_dump/mongodump cron scripts with retention",
			Rules: []Rule{
				{Artifact: "Terraform backup plan", File: regexp.MustCompile(`\.tf$`), Probe: "aws_backup_plan"},
				{Artifact: "k8s CronJob backup", File: regexp.MustCompile(`(?i)(^|/)cronjob\.(ya?ml|json)$`), Probe: "backup"},
			},
		},
		{
			ID:          "data_residency",
			Description: "Where data is physically stored and whether data residency requirements are met",
			ResolveWith: "Add residency config: Terraform provider region constraints, k8s node affinity with topology labels, or documented data residency policy",
			Rules: []Rule{
				{Artifact: "Terraform provider region constraint", File: regexp.MustCompile(`\.tf$`), Probe: "region"},
			},
		},
	}}
}
