package field

import "github.com/httpcore-go/httpcore/internal/strcomp"

// FieldId is a closed enumeration of the well-known HTTP field names this
// library gives semantic meaning to, plus Unknown for everything else. A
// field's id never changes its case-insensitive identity: Exists(id) and
// Exists(name) for any case-variant of the canonical name agree.
type FieldId uint8

const (
	Unknown FieldId = iota

	Host
	Connection
	ProxyConnection
	ContentLength
	ContentType
	TransferEncoding
	Upgrade
	Expect
	TE
	Trailer
	Accept
	AcceptEncoding
	AcceptLanguage
	ContentEncoding
	Cookie
	SetCookie
	UserAgent
	Referer
	Location
	Date
	Server
	CacheControl
	ETag
	IfMatch
	IfNoneMatch
	IfModifiedSince
	IfUnmodifiedSince
	LastModified
	Range
	IfRange
	ContentRange
	AcceptRanges
	Authorization
	WWWAuthenticate
	ProxyAuthenticate
	ProxyAuthorization
	Origin
	Vary
	Allow
	Via
	Warning
	RetryAfter
	XForwardedFor
	XForwardedProto
	XForwardedHost

	numFieldIds
)

var fieldNames = [numFieldIds]string{
	Unknown:             "",
	Host:                "Host",
	Connection:          "Connection",
	ProxyConnection:     "Proxy-Connection",
	ContentLength:       "Content-Length",
	ContentType:         "Content-Type",
	TransferEncoding:    "Transfer-Encoding",
	Upgrade:             "Upgrade",
	Expect:              "Expect",
	TE:                  "TE",
	Trailer:             "Trailer",
	Accept:              "Accept",
	AcceptEncoding:      "Accept-Encoding",
	AcceptLanguage:      "Accept-Language",
	ContentEncoding:     "Content-Encoding",
	Cookie:              "Cookie",
	SetCookie:           "Set-Cookie",
	UserAgent:           "User-Agent",
	Referer:             "Referer",
	Location:            "Location",
	Date:                "Date",
	Server:              "Server",
	CacheControl:        "Cache-Control",
	ETag:                "ETag",
	IfMatch:             "If-Match",
	IfNoneMatch:         "If-None-Match",
	IfModifiedSince:     "If-Modified-Since",
	IfUnmodifiedSince:   "If-Unmodified-Since",
	LastModified:        "Last-Modified",
	Range:               "Range",
	IfRange:             "If-Range",
	ContentRange:        "Content-Range",
	AcceptRanges:        "Accept-Ranges",
	Authorization:       "Authorization",
	WWWAuthenticate:     "WWW-Authenticate",
	ProxyAuthenticate:   "Proxy-Authenticate",
	ProxyAuthorization:  "Proxy-Authorization",
	Origin:              "Origin",
	Vary:                "Vary",
	Allow:               "Allow",
	Via:                 "Via",
	Warning:             "Warning",
	RetryAfter:          "Retry-After",
	XForwardedFor:       "X-Forwarded-For",
	XForwardedProto:     "X-Forwarded-Proto",
	XForwardedHost:      "X-Forwarded-Host",
}

// String returns the canonical name, or "" for Unknown.
func (id FieldId) String() string {
	if id >= numFieldIds {
		return ""
	}

	return fieldNames[id]
}

// LookupID resolves a field name to its FieldId, case-insensitively,
// length-dispatched the same way the per-field semantic switches in the
// parser are: a length check prunes most candidates before a single
// case-insensitive compare confirms the rest.
func LookupID(name string) FieldId {
	switch len(name) {
	case 2:
		if strcomp.EqualFold(name, "TE") {
			return TE
		}
	case 3:
		if strcomp.EqualFold(name, "Via") {
			return Via
		}
	case 4:
		if strcomp.EqualFold(name, "Host") {
			return Host
		}
		if strcomp.EqualFold(name, "Date") {
			return Date
		}
		if strcomp.EqualFold(name, "ETag") {
			return ETag
		}
		if strcomp.EqualFold(name, "Vary") {
			return Vary
		}
	case 5:
		if strcomp.EqualFold(name, "Allow") {
			return Allow
		}
		if strcomp.EqualFold(name, "Range") {
			return Range
		}
	case 6:
		if strcomp.EqualFold(name, "Accept") {
			return Accept
		}
		if strcomp.EqualFold(name, "Cookie") {
			return Cookie
		}
		if strcomp.EqualFold(name, "Expect") {
			return Expect
		}
		if strcomp.EqualFold(name, "Origin") {
			return Origin
		}
		if strcomp.EqualFold(name, "Server") {
			return Server
		}
	case 7:
		if strcomp.EqualFold(name, "Referer") {
			return Referer
		}
		if strcomp.EqualFold(name, "Upgrade") {
			return Upgrade
		}
		if strcomp.EqualFold(name, "Trailer") {
			return Trailer
		}
		if strcomp.EqualFold(name, "Warning") {
			return Warning
		}
	case 8:
		if strcomp.EqualFold(name, "Location") {
			return Location
		}
		if strcomp.EqualFold(name, "If-Match") {
			return IfMatch
		}
		if strcomp.EqualFold(name, "If-Range") {
			return IfRange
		}
	case 10:
		if strcomp.EqualFold(name, "Connection") {
			return Connection
		}
		if strcomp.EqualFold(name, "Set-Cookie") {
			return SetCookie
		}
		if strcomp.EqualFold(name, "User-Agent") {
			return UserAgent
		}
	case 11:
		if strcomp.EqualFold(name, "Retry-After") {
			return RetryAfter
		}
	case 12:
		if strcomp.EqualFold(name, "Content-Type") {
			return ContentType
		}
	case 13:
		if strcomp.EqualFold(name, "Cache-Control") {
			return CacheControl
		}
		if strcomp.EqualFold(name, "Content-Range") {
			return ContentRange
		}
		if strcomp.EqualFold(name, "Last-Modified") {
			return LastModified
		}
		if strcomp.EqualFold(name, "Accept-Ranges") {
			return AcceptRanges
		}
		if strcomp.EqualFold(name, "Authorization") {
			return Authorization
		}
		if strcomp.EqualFold(name, "If-None-Match") {
			return IfNoneMatch
		}
	case 14:
		if strcomp.EqualFold(name, "Content-Length") {
			return ContentLength
		}
	case 15:
		if strcomp.EqualFold(name, "Accept-Encoding") {
			return AcceptEncoding
		}
		if strcomp.EqualFold(name, "Accept-Language") {
			return AcceptLanguage
		}
		if strcomp.EqualFold(name, "X-Forwarded-For") {
			return XForwardedFor
		}
	case 16:
		if strcomp.EqualFold(name, "Content-Encoding") {
			return ContentEncoding
		}
		if strcomp.EqualFold(name, "Proxy-Connection") {
			return ProxyConnection
		}
		if strcomp.EqualFold(name, "X-Forwarded-Host") {
			return XForwardedHost
		}
		if strcomp.EqualFold(name, "WWW-Authenticate") {
			return WWWAuthenticate
		}
	case 17:
		if strcomp.EqualFold(name, "Transfer-Encoding") {
			return TransferEncoding
		}
		if strcomp.EqualFold(name, "If-Modified-Since") {
			return IfModifiedSince
		}
		if strcomp.EqualFold(name, "X-Forwarded-Proto") {
			return XForwardedProto
		}
	case 18:
		if strcomp.EqualFold(name, "Proxy-Authenticate") {
			return ProxyAuthenticate
		}
	case 19:
		if strcomp.EqualFold(name, "If-Unmodified-Since") {
			return IfUnmodifiedSince
		}
		if strcomp.EqualFold(name, "Proxy-Authorization") {
			return ProxyAuthorization
		}
	}

	return Unknown
}
