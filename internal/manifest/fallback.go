package manifest

// UnknownVersion is used for packages missing from the fallback table.
const UnknownVersion = "^1.0.0"

// Fallbacks maps npm package names to last-known-good version ranges.
type Fallbacks map[string]string

// DefaultFallbacks returns the built-in fallback table.
func DefaultFallbacks() Fallbacks {
	return Fallbacks{
		"express":            "^4.18.2",
		"cors":               "^2.8.5",
		"helmet":             "^7.0.0",
		"dotenv":             "^16.3.1",
		"nodemon":            "^3.0.1",
		"sqlite3":            "^5.1.6",
		"sequelize":          "^6.32.1",
		"pg":                 "^8.11.1",
		"pg-hstore":          "^2.3.4",
		"mysql2":             "^3.6.0",
		"@prisma/client":     "^5.1.1",
		"prisma":             "^5.1.1",
		"jsonwebtoken":       "^9.0.1",
		"bcryptjs":           "^2.4.3",
		"zod":                "^3.21.4",
		"swagger-ui-express": "^5.0.0",
		"swagger-jsdoc":      "^6.2.8",
	}
}

// With returns a copy of f with overrides applied on top.
func (f Fallbacks) With(overrides map[string]string) Fallbacks {
	out := make(Fallbacks, len(f)+len(overrides))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Version returns the fallback for pkg, or UnknownVersion.
func (f Fallbacks) Version(pkg string) string {
	if v, ok := f[pkg]; ok {
		return v
	}
	return UnknownVersion
}
