package admin

import "html/template"

var loginTemplate = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Log in | {{.AppName}} administration</title>
  <style>
    body { font-family: sans-serif; display: flex; justify-content: center; margin-top: 10vh; }
    form { display: grid; gap: .75rem; width: 20rem; }
    #error { color: #a33; min-height: 1.2em; }
  </style>
</head>
<body>
  <form id="login">
    <h1>{{.AppName}} administration</h1>
    <label>Username <input name="username" autocomplete="username" required></label>
    <label>Password <input name="password" type="password" autocomplete="current-password" required></label>
    <button type="submit">Log in</button>
    <div id="error"></div>
  </form>
  <script>
    document.getElementById("login").addEventListener("submit", async (event) => {
      event.preventDefault();
      const form = new FormData(event.target);
      const res = await fetch({{.LoginURL}}, {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify({ username: form.get("username"), password: form.get("password") })
      });
      const body = await res.json();
      if (!res.ok) {
        document.getElementById("error").textContent = body.error || "Login failed";
        return;
      }
      sessionStorage.setItem("access", body.access);
      const next = await fetch({{.Next}}, { headers: { "Authorization": "Bearer " + body.access } });
      document.body.innerHTML = "<pre></pre>";
      document.querySelector("pre").textContent = JSON.stringify(await next.json(), null, 2);
    });
  </script>
</body>
</html>
`))
