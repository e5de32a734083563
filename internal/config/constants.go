package config

// Version is the evaluator's version, printed by the REPL banner.
var Version = "0.1.0"

// Hash algorithm names recognized by builtins.hashString.
const (
	HashMD5    = "md5"
	HashSHA1   = "sha1"
	HashSHA256 = "sha256"
	HashSHA512 = "sha512"
)
