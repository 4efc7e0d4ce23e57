package cvss

//go:generate go run golang.org/x/tools/cmd/stringer@latest -type=Qualitative
//go:generate go run golang.org/x/tools/cmd/stringer@latest -type=V3Metric,v3Valid -linecomment
//go:generate go run golang.org/x/tools/cmd/stringer@latest -type=V4Metric,v4Valid -linecomment
//go:generate go run ./internal/cmd/v4data -o cvss_v4_score_data.go
