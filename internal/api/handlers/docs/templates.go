package docs

import "html/template"

var swaggerUITemplate = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: {{.SchemaURL}},
      dom_id: "#swagger-ui",
      deepLinking: true,
      persistAuthorization: true
    });
  </script>
</body>
</html>
`))

var redocTemplate = template.Must(template.New("redoc").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
</head>
<body>
  <redoc spec-url="{{.SchemaURL}}"></redoc>
  <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>
`))

var docsTemplate = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: sans-serif; margin: 2rem auto; max-width: 60rem; }
    .method { display: inline-block; min-width: 4.5rem; font-weight: bold; }
    code { background: #f4f4f4; padding: 0 .25rem; }
    .secured { color: #a33; font-size: .85em; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  {{with .Description}}<p>{{.}}</p>{{end}}
  <p>Version <code>{{.Version}}</code>. Interactive views: <a href="{{.SwaggerURL}}">Swagger</a>, <a href="{{.RedocURL}}">ReDoc</a>.</p>
  {{range .Endpoints}}
  <section>
    <h3><span class="method">{{.Method}}</span> <code>{{.Path}}</code>{{if .Secured}} <span class="secured">requires token</span>{{end}}</h3>
    {{with .Summary}}<p>{{.}}</p>{{end}}
    {{with .Description}}<p>{{.}}</p>{{end}}
  </section>
  {{end}}
</body>
</html>
`))
