package logs

import "github.com/charliek/cwlog/internal/domain"

// Analyze runs the reconstructor and the error index over the same batch
func Analyze(messages []string) domain.Analysis {
	return domain.Analysis{
		Records: ParseBatch(messages),
		Errors:  BuildErrorIndex(messages),
	}
}
