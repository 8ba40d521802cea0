package response

// 业务码直接沿用 HTTP 语义
const (
	CodeOK             = 0
	CodeBadRequest     = 400
	CodeNotFound       = 404
	CodeTooManyRequest = 429
	CodeServerError    = 500
	CodeUnavailable    = 503
	CodeTimeout        = 504
)

var CodeMsgMap = map[int]string{
	CodeOK:             "OK",
	CodeBadRequest:     "Bad Request",
	CodeNotFound:       "Not Found",
	CodeTooManyRequest: "Too Many Requests",
	CodeServerError:    "Internal Server Error",
	CodeUnavailable:    "Service Unavailable",
	CodeTimeout:        "Gateway Timeout",
}

// HTTPStatus 业务码对应的 HTTP 状态
func HTTPStatus(code int) int {
	if code == CodeOK {
		return 200
	}
	return code
}
