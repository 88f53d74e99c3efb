package handler

import "github.com/gofiber/fiber/v2"

// Index serves the single-file research page.
func (h *Handler) Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexHTML)
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>SEO Keyword Research Agent</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 0; background: #f5f6fa; color: #2d3436; }
  .container { max-width: 960px; margin: 0 auto; padding: 2rem; }
  h1 { margin-bottom: 0.25rem; }
  .subtitle { color: #636e72; margin-bottom: 1.5rem; }
  form { background: #fff; border-radius: 8px; padding: 1.5rem; box-shadow: 0 1px 4px rgba(0,0,0,0.08); }
  label { display: block; margin: 0.75rem 0 0.25rem; font-weight: 600; }
  input[type=text], input[type=number] { width: 100%; padding: 0.5rem; border: 1px solid #dfe6e9; border-radius: 4px; box-sizing: border-box; }
  .checks { margin-top: 0.75rem; }
  button { margin-top: 1rem; padding: 0.6rem 1.5rem; background: #0984e3; color: #fff; border: 0; border-radius: 4px; cursor: pointer; font-size: 1rem; }
  button:disabled { background: #b2bec3; }
  table { width: 100%; border-collapse: collapse; margin-top: 1.5rem; background: #fff; border-radius: 8px; overflow: hidden; }
  th, td { padding: 0.5rem 0.75rem; text-align: left; border-bottom: 1px solid #f1f2f6; font-size: 0.9rem; }
  th { background: #2d3436; color: #fff; }
  .meta { margin-top: 1rem; color: #636e72; font-size: 0.9rem; }
</style>
</head>
<body>
<div class="container">
  <h1>SEO Keyword Research Agent</h1>
  <p class="subtitle">AI-assisted keyword discovery ranked by opportunity score</p>
  <form id="research-form">
    <label for="seed">Seed keyword</label>
    <input type="text" id="seed" placeholder="e.g. digital marketing" required>
    <label for="max">Max keywords</label>
    <input type="number" id="max" value="25" min="1" max="100">
    <div class="checks">
      <label><input type="checkbox" id="questions" checked> Include question keywords</label>
      <label><input type="checkbox" id="longtail" checked> Include long-tail keywords</label>
    </div>
    <button type="submit" id="go">Research</button>
  </form>
  <div id="meta" class="meta"></div>
  <div id="results"></div>
</div>
<script>
document.getElementById('research-form').addEventListener('submit', async (e) => {
  e.preventDefault();
  const btn = document.getElementById('go');
  btn.disabled = true;
  btn.textContent = 'Researching...';
  try {
    const resp = await fetch('/api/research', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({
        seed_keyword: document.getElementById('seed').value,
        max_keywords: parseInt(document.getElementById('max').value, 10),
        include_questions: document.getElementById('questions').checked,
        include_long_tail: document.getElementById('longtail').checked
      })
    });
    const data = await resp.json();
    if (!resp.ok) throw new Error(data.error || 'request failed');
    render(data);
  } catch (err) {
    document.getElementById('results').innerHTML = '<p>Error: ' + err.message + '</p>';
  } finally {
    btn.disabled = false;
    btn.textContent = 'Research';
  }
});

function render(data) {
  document.getElementById('meta').textContent =
    data.total_keywords + ' keywords for "' + data.seed_keyword + '" in ' + data.processing_time + 's';
  const rows = data.keywords.map((k, i) =>
    '<tr><td>' + (i + 1) + '</td><td>' + k.keyword + '</td><td>' + k.opportunity_score.toFixed(1) +
    '</td><td>' + k.search_volume.toLocaleString() + '</td><td>' + k.competition_score.toFixed(2) +
    '</td><td>' + k.difficulty + '</td><td>' + k.intent + '</td><td>$' + k.cpc_estimate.toFixed(2) + '</td></tr>'
  ).join('');
  document.getElementById('results').innerHTML =
    '<table><thead><tr><th>#</th><th>Keyword</th><th>Score</th><th>Volume</th><th>Competition</th><th>Difficulty</th><th>Intent</th><th>CPC</th></tr></thead><tbody>' +
    rows + '</tbody></table>';
}
</script>
</body>
</html>`
