package readability_test

import (
	"testing"

	"github.com/fwojciec/sitetext"
	"github.com/fwojciec/sitetext/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		e := readability.NewExtractor()
		_, err := e.Extract("")
		assert.Equal(t, sitetext.EINVALID, sitetext.ErrorCode(err))
	})

	t.Run("extracts article content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Deployment</title></head>
<body>
<article>
<h1>Deployment</h1>
<p>Deployments are rolled out gradually across the fleet. Each batch is
verified against the health endpoint before the next batch starts, and a
failed check rolls the whole fleet back to the previous release.</p>
<p>Use the dry-run flag to preview the batches a rollout would produce
without touching any hosts. The plan output lists hosts in rollout order.</p>
</article>
</body>
</html>`

		e := readability.NewExtractor()
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "rolled out gradually")
		assert.NotEmpty(t, result.ContentHTML)
	})
}
