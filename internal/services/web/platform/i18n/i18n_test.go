package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{name: "empty", candidates: nil, want: "en-US"},
		{name: "exact", candidates: []string{"pt-BR"}, want: "pt-BR"},
		{name: "base language", candidates: []string{"pt"}, want: "pt-BR"},
		{name: "accept header", candidates: []string{"pt-BR,pt;q=0.9,en;q=0.8"}, want: "pt-BR"},
		{name: "unsupported falls through", candidates: []string{"ja", "pt-BR"}, want: "pt-BR"},
		{name: "garbage ignored", candidates: []string{"!!!", "en-GB"}, want: "en-US"},
	}
	for _, tc := range tests {
		if got := Match(tc.candidates...).String(); got != tc.want {
			t.Errorf("%s: Match(%v) = %q, want %q", tc.name, tc.candidates, got, tc.want)
		}
	}
}

func TestResolveTagPrecedence(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pt-BR")
	if got := ResolveTag(req).String(); got != "pt-BR" {
		t.Fatalf("header tag = %q", got)
	}

	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en-US"})
	if got := ResolveTag(req).String(); got != "en-US" {
		t.Fatalf("cookie should beat header, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en-US"})
	if got := ResolveTag(req).String(); got != "pt-BR" {
		t.Fatalf("query should beat cookie, got %q", got)
	}

	if got := ResolveTag(nil).String(); got != "en-US" {
		t.Fatalf("nil request tag = %q", got)
	}
}

func TestResolveLocalizerPersistsExplicitChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil)
	loc, lang := ResolveLocalizer(rr, req)
	if lang != "pt-BR" {
		t.Fatalf("lang = %q, want pt-BR", lang)
	}
	if got := loc.Sprintf("header.new_task"); got != "Nova Tarefa" {
		t.Fatalf("localized = %q, want Nova Tarefa", got)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookies = %v", cookies)
	}
}

func TestResolveLocalizerSkipsCookieWithoutExplicitChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pt-BR")
	_, lang := ResolveLocalizer(rr, req)
	if lang != "pt-BR" {
		t.Fatalf("lang = %q", lang)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("expected no cookie from Accept-Language alone")
	}
}

func TestResolveLocalizerIgnoresUnsupportedExplicitChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?lang=ja", nil)
	_, lang := ResolveLocalizer(rr, req)
	if lang != "en-US" {
		t.Fatalf("lang = %q, want en-US", lang)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("expected no cookie for unsupported language")
	}
}
