package common

// TokenStorageKey is the fixed key under which the bearer token is kept
// in the local state store.
const TokenStorageKey = "access_token"

// AuthorizationHeader is the HTTP header carrying the bearer token on
// outbound requests.
const AuthorizationHeader = "Authorization"
