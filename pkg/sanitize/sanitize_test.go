package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", Text("<script>alert(1)</script>"))
	assert.NotContains(t, Text("<b>hello</b>"), "<")
	assert.NotContains(t, Text("<b>hello</b>"), ">")
	assert.Equal(t, "alert(1)", Text("javascript:alert(1)"))
	assert.Equal(t, "text/html", Text("data:text/html"))
	assert.Equal(t, "trimmed", Text("  trimmed  "))
	assert.Equal(t, "", Text(""))
}

func TestHTML(t *testing.T) {
	assert.Equal(t, "safe", HTML("<script>alert(1)</script>safe"))
	assert.NotContains(t, HTML("<iframe src=x></iframe>keep"), "iframe")
	assert.NotContains(t, HTML(`<img src=x onerror=alert(1)>`), "onerror=")
	assert.NotContains(t, HTML(`<input type="text">`), "input")
	assert.NotContains(t, HTML(`<a href="javascript:alert(1)">x</a>`), "javascript:")
	assert.Equal(t, "<p>fine</p>", HTML("<p>fine</p>"))
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", Email("a@b.com"))
	assert.Equal(t, "a@b.com", Email("  a@b.com  "))
	assert.Equal(t, "", Email("not-an-email"))
	assert.Equal(t, "", Email("missing@tld"))
	assert.Equal(t, "", Email("two words@b.com"))
	assert.Equal(t, "", Email(""))
}

func TestURL(t *testing.T) {
	assert.Equal(t, "https://buildrs.dev", URL("https://buildrs.dev"))
	assert.Equal(t, "http://localhost:8080/api", URL("http://localhost:8080/api"))
	assert.Equal(t, "", URL("ftp://example.com"))
	assert.Equal(t, "", URL("javascript:alert(1)"))
	assert.Equal(t, "", URL("not a url"))
	assert.Equal(t, "", URL("/relative/path"))
}

func TestGithubUsername(t *testing.T) {
	assert.Equal(t, "octocat", GithubUsername("octocat"))
	assert.Equal(t, "oct-o-cat1", GithubUsername("oct-o-cat1"))
	assert.Equal(t, "", GithubUsername("-leading"))
	assert.Equal(t, "", GithubUsername("trailing-"))
	assert.Equal(t, "", GithubUsername("double--hyphen"))
	assert.Equal(t, "", GithubUsername(strings.Repeat("a", 40)))
	assert.Equal(t, strings.Repeat("a", 39), GithubUsername(strings.Repeat("a", 39)))
}

func TestUserInput(t *testing.T) {
	assert.Equal(t, "", UserInput("not-an-email", KindEmail))
	assert.Equal(t, "a@b.com", UserInput("a@b.com", KindEmail))
	assert.Equal(t, "plain", UserInput("<plain>", KindText))
	assert.Equal(t, "", UserInput("bad url", KindURL))
	assert.Equal(t, "octocat", UserInput(" octocat ", KindGithub))
}

func TestObject(t *testing.T) {
	obj := map[string]any{
		"bio":    "<img src=x onerror=alert(1)>",
		"age":    float64(30),
		"active": true,
		"nested": map[string]any{"note": "<script>x</script>"},
		"skills": []any{"Go", "<React>"},
	}

	out := Object(obj, nil)

	assert.NotContains(t, out["bio"], "onerror")
	assert.NotContains(t, out["bio"], "<")
	assert.Equal(t, float64(30), out["age"])
	assert.Equal(t, true, out["active"])
	assert.Equal(t, "scriptx/script", out["nested"].(map[string]any)["note"])
	assert.Equal(t, []any{"Go", "React"}, out["skills"])
}

func TestObjectAllowList(t *testing.T) {
	obj := map[string]any{
		"name":   "Ada",
		"secret": "drop me",
	}

	out := Object(obj, []string{"name"})

	assert.Equal(t, "Ada", out["name"])
	assert.NotContains(t, out, "secret")
}

func TestFormData(t *testing.T) {
	out := FormData(
		map[string]string{"email": "a@b.com", "site": "nope"},
		map[string]Kind{"email": KindEmail, "site": KindURL, "missing": KindText},
	)

	assert.Equal(t, "a@b.com", out["email"])
	assert.Equal(t, "", out["site"])
	assert.Equal(t, "", out["missing"])
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;&amp;&quot;&#x27;&#x2F;", EscapeHTML(`<b>&"'/`))
}

func TestRandomString(t *testing.T) {
	a := RandomString(32)
	b := RandomString(32)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestCSRFToken(t *testing.T) {
	token := CSRFToken()
	assert.Len(t, token, 32)

	assert.True(t, ValidateCSRFToken(token, token))
	assert.False(t, ValidateCSRFToken(token, CSRFToken()))
	assert.False(t, ValidateCSRFToken("", token))
	assert.False(t, ValidateCSRFToken(token, ""))
}
