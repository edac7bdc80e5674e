package model

// EnvAssignment is a single KEY=VALUE line in dotenv format. Values are
// written verbatim, without quoting or escaping, matching what the
// consuming tools expect to source.
type EnvAssignment struct {
	Key   string
	Value string
}
