package config

// DefaultPatterns are the built-in named whitelist patterns. Every pattern is
// matched against the canonical form of the input and is implicitly anchored
// by the engine.
var DefaultPatterns = map[string]string{
	"SafeString": `[a-zA-Z0-9. ]{0,1024}`,
	"Email":      `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[a-zA-Z]{2,}`,
	"IPAddress":  `(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)`,
	"CreditCard": `[0-9 -]{13,19}`,
	"Redirect":   `/[a-zA-Z0-9\-_/?&=]*`,

	// HTTP surface shapes. Name fields are intentionally narrow; value
	// fields admit the printable subset commonly seen in legitimate traffic.
	"HTTPParameterName":  `[a-zA-Z0-9_\-]{1,100}`,
	"HTTPParameterValue": `[a-zA-Z0-9.\-\/+=_ @]*`,
	"HTTPCookieName":     `[a-zA-Z0-9_\-]{1,100}`,
	"HTTPCookieValue":    `[a-zA-Z0-9.\-\/+=_ ]*`,
	"HTTPHeaderName":     `[a-zA-Z0-9_\-]{1,100}`,
	"HTTPHeaderValue":    `[a-zA-Z0-9()\-=\*\.\?;,+\/:&_ ]*`,

	// Filesystem shapes used by the dedicated path validator.
	"FileName":      `[a-zA-Z0-9!@#$%^&{}\[\]()_+\-=,.~'\x60 ]{1,255}`,
	"DirectoryName": `[a-zA-Z0-9:/\\!@#$%^&{}\[\]()_+\-=,.~'\x60 ]{1,255}`,
}
