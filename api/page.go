package api

import "html/template"

// pageTemplate renders the widget. The input and the button share one form,
// so pressing Enter and clicking the button submit the same way. The panel
// opens once a lookup has completed; while one is loading the page refreshes
// itself until the result lands
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Weather</title>
{{if .Loading}}<meta http-equiv="refresh" content="1">{{end}}
<style>
body { background: #3b82f6; height: 100vh; margin: 0; display: grid; place-items: center; font-family: sans-serif; }
.card { background: #fff; width: 24rem; padding: 1rem; border-radius: .375rem; }
.search { display: flex; align-items: center; justify-content: space-between; }
.search input { flex: 1; font-size: 1.25rem; font-weight: 600; text-transform: uppercase; border: 0; border-bottom: 1px solid #e5e7eb; padding: .25rem; }
.search button { background: none; border: 0; cursor: pointer; }
.search button img { width: 2rem; height: 2rem; }
.panel { overflow: hidden; height: 0; transition: height 300ms 75ms; }
.panel.expanded { height: 27rem; }
.spinner { display: grid; place-items: center; height: 100%; }
.spinner img { width: 3.5rem; animation: spin 1s linear infinite; }
.result { margin-top: 2.5rem; text-align: center; display: flex; flex-direction: column; gap: 1.5rem; }
.result .location { font-size: 1.25rem; font-weight: 600; }
.result .icon { width: 13rem; }
.temp { display: flex; justify-content: center; }
.temp img { height: 2.25rem; margin-top: .25rem; }
@keyframes spin { to { transform: rotate(360deg); } }
</style>
</head>
<body>
<div class="card">
  <form class="search" method="post" action="/search">
    <input type="text" name="city" placeholder="Search for a city" autofocus>
    <button type="submit"><img src="/assets/{{.SearchIcon.Asset}}" alt="Search"></button>
  </form>
  <div class="panel{{if .Expanded}} expanded{{end}}">
  {{- if .Loading}}
    <div class="spinner"><img src="/assets/{{.Icon.Asset}}" alt="Loading"></div>
  {{- else if .Expanded}}
    <div class="result">
      {{with .Location}}<p class="location">{{.}}</p>{{end}}
      <div>
        {{if .HasIcon}}<img class="icon" src="/assets/{{.Icon.Asset}}" alt="{{.Label}}">{{end}}
        <h3>{{.Label}}</h3>
      </div>
      {{with .Temperature}}<div class="temp"><img src="/assets/{{$.TemperatureIcon.Asset}}" alt=""><h2>{{.}}</h2></div>{{end}}
    </div>
  {{- end}}
  </div>
</div>
</body>
</html>
`))
