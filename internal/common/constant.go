package common

// RequestIDHeaderName is the HTTP header carrying the client-generated
// correlation ID on outbound requests.
const RequestIDHeaderName = "X-Client-Request-Id"
