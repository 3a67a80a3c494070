package main

// ── Base layout ───────────────────────────────────────────────────────────────

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Mission Control</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'JetBrains Mono',monospace,sans-serif;background:#0d1117;color:#c9d1d9;font-size:13px;line-height:1.5}
a{color:#58a6ff;text-decoration:none}
a:hover{text-decoration:underline}
nav{background:#161b22;border-bottom:1px solid #30363d;padding:8px 16px;display:flex;gap:16px;align-items:center}
nav .brand{color:#f0f6fc;font-weight:700;font-size:15px;margin-right:8px}
nav a{color:#8b949e;padding:4px 8px;border-radius:4px}
nav a.active,nav a:hover{color:#c9d1d9;background:#21262d;text-decoration:none}
main{padding:16px;max-width:1100px;margin:0 auto}
h1{font-size:16px;font-weight:700;color:#f0f6fc;margin-bottom:12px}
.cards{display:flex;gap:12px;flex-wrap:wrap;margin-bottom:16px}
.card{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:12px 16px;min-width:110px}
.card .val{font-size:22px;font-weight:700;color:#f0f6fc}
.card .lbl{font-size:11px;color:#8b949e;margin-top:2px}
.chips{display:flex;gap:6px;margin-bottom:12px}
.chips a{font-size:11px;padding:2px 10px;border:1px solid #30363d;border-radius:12px;color:#8b949e}
.chips a.active{background:#1f6feb;border-color:#1f6feb;color:#fff}
.feed-item{display:flex;gap:12px;padding:6px 10px;border-bottom:1px solid #21262d}
.feed-item:hover{background:#161b22}
.feed-time{color:#8b949e;min-width:80px;flex-shrink:0;font-size:11px}
.feed-type{min-width:70px;flex-shrink:0}
.feed-content{flex:1;white-space:pre-wrap;word-break:break-word}
.tag{display:inline-block;padding:1px 6px;border-radius:4px;font-size:10px;background:#21262d;color:#8b949e;border:1px solid #30363d}
.tag.tool{color:#79c0ff}.tag.message{color:#56d364}.tag.cron{color:#f59e0b}
.empty{padding:32px;text-align:center;color:#8b949e}
.error{padding:16px;border:1px solid #f85149;border-radius:6px;color:#f87171;margin-bottom:12px}
.cal-nav{display:flex;gap:8px;align-items:center;margin-bottom:12px}
.cal-nav a{font-size:11px;padding:2px 10px;border:1px solid #30363d;border-radius:4px;color:#8b949e}
.cal-grid{display:grid;grid-template-columns:repeat(7,1fr);gap:6px}
.cal-day{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:8px;min-height:120px}
.cal-day.today{border-color:#1f6feb}
.cal-date{font-size:11px;color:#8b949e;margin-bottom:6px}
.cal-day.today .cal-date{color:#58a6ff;font-weight:700}
.event{display:block;font-size:11px;padding:3px 6px;margin-bottom:4px;border-radius:4px;background:#21262d;color:#c9d1d9}
.event .etime{color:#79c0ff}
.event .rec{color:#f59e0b;font-size:10px}
.detail dt{color:#8b949e;font-size:11px;text-transform:uppercase;letter-spacing:.05em;margin-top:12px}
.detail dd{margin:2px 0 0}
pre{white-space:pre-wrap;word-break:break-all;font-family:monospace;font-size:11px;background:#161b22;border:1px solid #30363d;border-radius:6px;padding:8px}
.status{display:inline-block;padding:1px 8px;border-radius:10px;font-size:11px;border:1px solid #30363d}
.status.ok{color:#56d364}.status.pending{color:#f59e0b}.status.error{color:#f87171}
input[type=text]{width:100%;background:#0d1117;border:1px solid #30363d;border-radius:6px;color:#c9d1d9;padding:8px 12px;font-family:inherit;font-size:13px}
input[type=text]:focus{outline:none;border-color:#1f6feb}
.result{padding:10px;border-bottom:1px solid #21262d}
.result .rfile{color:#79c0ff;font-size:11px}
.result .rsnippet{margin-top:4px;color:#8b949e}
mark{background:#bb8009;color:#0d1117;border-radius:2px;padding:0 1px}
</style>
</head>
<body>
<nav>
<span class="brand">🔮 Mission Control</span>
<a href="/activity" {{if eq .Tab "activity"}}class="active"{{end}}>Activity</a>
<a href="/calendar" {{if eq .Tab "calendar"}}class="active"{{end}}>Calendar</a>
<a href="/search" {{if eq .Tab "search"}}class="active"{{end}}>Search</a>
</nav>
<main>{{template "content" .}}</main>
</body>
</html>{{end}}`

// ── Activity feed ─────────────────────────────────────────────────────────────

const tmplActivity = `
{{define "content"}}
<h1>Activity</h1>
<div class="cards">
<div class="card"><div class="val">{{.Stats.Total}}</div><div class="lbl">Total</div></div>
<div class="card"><div class="val">{{.Stats.Tool}}</div><div class="lbl">Tool calls</div></div>
<div class="card"><div class="val">{{.Stats.Messages}}</div><div class="lbl">Messages</div></div>
<div class="card"><div class="val">{{.Stats.Cron}}</div><div class="lbl">Cron</div></div>
</div>
<div class="chips">
<a href="/activity?filter=all" {{if eq .Filter "all"}}class="active"{{end}}>All</a>
<a href="/activity?filter=tool" {{if eq .Filter "tool"}}class="active"{{end}}>Tools</a>
<a href="/activity?filter=message" {{if eq .Filter "message"}}class="active"{{end}}>Messages</a>
<a href="/activity?filter=cron" {{if eq .Filter "cron"}}class="active"{{end}}>Cron</a>
</div>
{{if .LoadErr}}
<div class="error">{{.LoadErr}}</div>
{{else if not .Feed.Items}}
<div class="empty">No activity to show</div>
{{else}}
{{range .Feed.Items}}
<div class="feed-item">
<span class="feed-time">{{.TimeLabel}}</span>
<span class="feed-type"><span class="tag {{.Type}}">{{.Type}}</span></span>
<span class="feed-content">{{.Content}}</span>
</div>
{{end}}
{{end}}
{{end}}`

// ── Weekly calendar ───────────────────────────────────────────────────────────

const tmplCalendar = `
{{define "content"}}
<h1>{{.Cal.Title}}</h1>
<div class="cal-nav">
<a href="/calendar?start={{.Cal.Prev}}">&larr; Prev</a>
<a href="/calendar?start={{.Cal.Today}}">Today</a>
<a href="/calendar?start={{.Cal.Next}}">Next &rarr;</a>
</div>
<div class="cal-grid">
{{range .Cal.Days}}
<div class="cal-day{{if .IsToday}} today{{end}}">
<div class="cal-date">{{.Label}}</div>
{{range .Events}}
<a class="event" href="/jobs/{{.JobID}}">
<span class="etime">{{.Time}}</span> {{.Name}}{{if .Recurring}} <span class="rec">&#8635;</span>{{end}}
</a>
{{end}}
</div>
{{end}}
</div>
{{end}}`

// ── Job detail ────────────────────────────────────────────────────────────────

const tmplJob = `
{{define "content"}}
<h1>{{.Job.Name}}</h1>
<dl class="detail">
<dt>Schedule</dt><dd>{{.Job.Schedule}}</dd>
<dt>Description</dt><dd>{{.Job.Description}}</dd>
<dt>Next run</dt><dd>{{.Job.NextRun}}</dd>
{{if .Job.LastRun}}<dt>Last run</dt><dd>{{.Job.LastRun}}</dd>{{end}}
{{if .Job.Handler}}<dt>Handler</dt><dd title="{{.Job.Handler.Full}}">{{.Job.Handler.Label}}</dd>{{end}}
{{if .Job.Script}}<dt>Script</dt><dd><pre>{{.Job.Script}}</pre></dd>{{end}}
<dt>Status</dt><dd><span class="status {{.Job.StatusClass}}">{{.Job.Status}}</span></dd>
</dl>
<p style="margin-top:16px"><a href="/calendar">&larr; Back to calendar</a></p>
{{end}}`

// ── Search ────────────────────────────────────────────────────────────────────

const tmplSearch = `
{{define "content"}}
<h1>Search</h1>
<input type="text" id="q" placeholder="Search memory and sessions..." value="{{.Query}}" autofocus>
<div id="results"><div class="empty">Type to search memory and session content</div></div>
<script>
(function () {
  var input = document.getElementById('q');
  var box = document.getElementById('results');
  var timer = null;
  function run() {
    fetch('/search/results?q=' + encodeURIComponent(input.value))
      .then(function (r) { return r.text(); })
      .then(function (html) { box.innerHTML = html; });
  }
  input.addEventListener('input', function () {
    if (timer) clearTimeout(timer);
    timer = setTimeout(run, 300);
  });
  if (input.value) run();
})();
</script>
{{end}}`

// tmplSearchResults is a fragment, not a page; it replaces #results.
const tmplSearchResults = `
{{if eq .State "prompt"}}
<div class="empty">Type to search memory and session content</div>
{{else if eq .State "empty"}}
<div class="empty">No results for &quot;{{.Query}}&quot;</div>
{{else}}
<div class="empty" style="padding:8px;text-align:left">{{.Total}} result(s)</div>
{{range .Results}}
<div class="result">
<div class="rfile">{{.File}} <span class="tag">{{.Type}}</span></div>
<div class="rsnippet">{{safe .Snippet}}</div>
</div>
{{end}}
{{end}}`
