package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyMethod     = "method"
	KeyPath       = "path"
	KeyStatus     = "status"
	KeyDurationMS = "duration_ms"
	KeyUserAgent  = "user_agent"
	KeyRemoteAddr = "remote_addr"
	KeyRequestID  = "request_id"
	KeyResponseSz = "response_size"
	KeyItemName   = "item_name"
	KeyItemCount  = "item_count"
	KeyDriver     = "driver"
	KeyAddr       = "addr"
	KeyPanic      = "panic"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func UserAgent(ua string) slog.Attr   { return slog.String(KeyUserAgent, ua) }
func RemoteAddr(a string) slog.Attr   { return slog.String(KeyRemoteAddr, a) }
func RequestID(id string) slog.Attr   { return slog.String(KeyRequestID, id) }
func ResponseSize(n int) slog.Attr    { return slog.Int(KeyResponseSz, n) }
func ItemName(n string) slog.Attr     { return slog.String(KeyItemName, n) }
func ItemCount(n int) slog.Attr       { return slog.Int(KeyItemCount, n) }
func Driver(d string) slog.Attr       { return slog.String(KeyDriver, d) }
func Addr(a string) slog.Attr         { return slog.String(KeyAddr, a) }
func Panic(v any) slog.Attr           { return slog.Any(KeyPanic, v) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
