package respond

import "regexp"

var (
	// 接続文字列に含まれるパスワードをマスクする
	dsnPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

	// 共有シークレットらしきトークンをマスクする
	tokenPattern = regexp.MustCompile(`(?i)(token|secret)=[^\s&"]+`)
)

// Sanitize masks credentials that may appear inside error messages, such as
// passwords embedded in a connection string the database driver echoes back.
func Sanitize(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	msg = dsnPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = tokenPattern.ReplaceAllString(msg, "$1=****")
	return msg
}
