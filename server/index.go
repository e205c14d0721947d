package server

import "net/http"

// indexPage is the paste-and-summarize form, the HTTP analogue of the CLI.
const indexPage = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Condense</title></head>
<body>
<h1>Condense</h1>
<p>Paste article text or a URL and get a concise summary.</p>
<textarea id="input" rows="12" cols="80" placeholder="Article text or https://..."></textarea><br>
<label>Max tokens <input id="max" type="number" value="160"></label>
<label>Min tokens <input id="min" type="number" value="40"></label>
<button onclick="run()">Summarize</button>
<pre id="out"></pre>
<script>
async function run() {
  const v = document.getElementById('input').value.trim();
  const body = /^https?:\/\//i.test(v) ? {url: v} : {text: v};
  body.max_tokens = parseInt(document.getElementById('max').value, 10);
  body.min_tokens = parseInt(document.getElementById('min').value, 10);
  const resp = await fetch('/api/summarize', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(body),
  });
  const data = await resp.json();
  document.getElementById('out').textContent =
    data.error ? 'Error: ' + data.error :
    data.summary + (data.notice ? '\n\n' + data.notice : '');
}
</script>
</body>
</html>`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexPage))
}
