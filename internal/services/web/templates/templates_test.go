package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestHeaderHasSingleNewTaskButton(t *testing.T) {
	t.Parallel()

	doc := render(t, context.Background(), Header(englishPage()))
	buttons := findAll(doc, "button")
	if len(buttons) != 1 {
		t.Fatalf("buttons = %d, want 1", len(buttons))
	}
	if got := textOf(buttons[0]); got != "New Task" {
		t.Fatalf("button label = %q, want %q", got, "New Task")
	}
	if got := attrOf(buttons[0], "data-size"); got != "sm" {
		t.Fatalf("button size = %q, want sm", got)
	}
}

func TestHeaderTitleLinksHome(t *testing.T) {
	t.Parallel()

	doc := render(t, context.Background(), Header(englishPage()))
	headers := findAll(doc, "header")
	if len(headers) != 1 {
		t.Fatalf("headers = %d, want 1", len(headers))
	}
	h1s := findAll(headers[0], "h1")
	if len(h1s) != 1 {
		t.Fatalf("h1 = %d, want 1", len(h1s))
	}
	links := findAll(h1s[0], "a")
	if len(links) != 1 {
		t.Fatalf("title links = %d, want 1", len(links))
	}
	if got := attrOf(links[0], "href"); got != "/" {
		t.Fatalf("title href = %q, want /", got)
	}
	if got := textOf(links[0]); got != "Todo List app" {
		t.Fatalf("title = %q, want %q", got, "Todo List app")
	}
}

func TestHeaderLocalizesCopy(t *testing.T) {
	t.Parallel()

	doc := render(t, context.Background(), Header(pageFor("pt-BR")))
	if got := textOf(findAll(doc, "button")[0]); got != "Nova Tarefa" {
		t.Fatalf("button label = %q", got)
	}
	if got := textOf(findAll(doc, "h1")[0]); got != "App Lista de Tarefas" {
		t.Fatalf("title = %q", got)
	}
}

func TestHomeRendersSingleIconWithDimensions(t *testing.T) {
	t.Parallel()

	doc := render(t, context.Background(), Home(homeView()))
	imgs := findAll(doc, "img")
	if len(imgs) != 1 {
		t.Fatalf("images = %d, want 1", len(imgs))
	}
	for name, want := range map[string]string{"src": "/icon.png", "alt": "icon", "width": "100", "height": "100"} {
		if got := attrOf(imgs[0], name); got != want {
			t.Fatalf("img %s = %q, want %q", name, got, want)
		}
	}
}

func TestHomeRendersGreetingCartLinkAndPrice(t *testing.T) {
	t.Parallel()

	doc := render(t, context.Background(), Home(homeView()))
	sections := findAll(doc, "section")
	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}
	if !strings.HasPrefix(textOf(sections[0]), "Hello world") {
		t.Fatalf("home text = %q, want greeting first", textOf(sections[0]))
	}

	links := findAll(doc, "a")
	if len(links) != 1 {
		t.Fatalf("links = %d, want 1", len(links))
	}
	if got := attrOf(links[0], "href"); got != "/cart" {
		t.Fatalf("link href = %q, want /cart", got)
	}
	if got := textOf(links[0]); got != "Go to cart" {
		t.Fatalf("link text = %q", got)
	}

	prices := findByClass(doc, "price")
	if len(prices) != 1 {
		t.Fatalf("price widgets = %d, want 1", len(prices))
	}
	if got := attrOf(prices[0], "data-currency"); got != "USD" {
		t.Fatalf("data-currency = %q, want USD", got)
	}
}

func TestHomeOrdersChildren(t *testing.T) {
	t.Parallel()

	doc := render(t, context.Background(), Home(homeView()))
	section := findAll(doc, "section")[0]
	var order []string
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			order = append(order, "text")
		case html.ElementNode:
			order = append(order, c.Data)
		}
	}
	want := []string{"text", "img", "a", "p"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Fatalf("child order = %v, want %v", order, want)
	}
}

func TestPriceFormat(t *testing.T) {
	t.Parallel()

	price, err := NewPrice(1999, "usd")
	if err != nil {
		t.Fatalf("NewPrice() error = %v", err)
	}
	if price.Currency != currency.USD {
		t.Fatalf("currency = %v, want USD", price.Currency)
	}
	got := price.Format(message.NewPrinter(language.AmericanEnglish))
	if !strings.Contains(got, "USD") || !strings.Contains(got, "19.99") {
		t.Fatalf("Format() = %q, want USD 19.99", got)
	}
}

func TestPriceUsesCurrencyScale(t *testing.T) {
	t.Parallel()

	price, err := NewPrice(500, "JPY")
	if err != nil {
		t.Fatalf("NewPrice() error = %v", err)
	}
	got := price.Format(message.NewPrinter(language.AmericanEnglish))
	if !strings.Contains(got, "500") {
		t.Fatalf("Format() = %q, want 500 yen", got)
	}
}

func TestNewPriceRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := NewPrice(-1, "USD"); err == nil {
		t.Fatal("expected negative amount error")
	}
	if _, err := NewPrice(100, "XYZW"); err == nil {
		t.Fatal("expected currency error")
	}
	if _, err := NewPrice(MaxPriceMinor+1, "USD"); err == nil {
		t.Fatal("expected out of range amount error")
	}
}

func TestPriceFormatsLargestAmountExactly(t *testing.T) {
	t.Parallel()

	price, err := NewPrice(MaxPriceMinor, "USD")
	if err != nil {
		t.Fatalf("NewPrice() error = %v", err)
	}
	got := price.Format(message.NewPrinter(language.AmericanEnglish))
	if !strings.Contains(got, "90071992547409.92") {
		t.Fatalf("Format() = %q, want exact cents", got)
	}
}

func TestLayoutWrapsChildrenInMain(t *testing.T) {
	t.Parallel()

	ctx := templ.WithChildren(context.Background(), templ.Raw(`<section id="child">ok</section>`))
	var b strings.Builder
	if err := Layout(pageFor("pt-BR"), "Carrinho").Render(ctx, &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	body := b.String()
	if !strings.HasPrefix(strings.ToLower(body), "<!doctype html>") {
		t.Fatalf("missing doctype: %q", body)
	}
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := attrOf(findAll(doc, "html")[0], "lang"); got != "pt-BR" {
		t.Fatalf("lang = %q, want pt-BR", got)
	}
	mains := findAll(doc, "main")
	if len(mains) != 1 || attrOf(mains[0], "id") != "main" {
		t.Fatalf("expected one main#main, got %d", len(mains))
	}
	if len(findAll(mains[0], "section")) != 1 {
		t.Fatal("expected child inside main")
	}
	if len(findAll(doc, "header")) != 1 {
		t.Fatal("expected header in layout")
	}
	if got := textOf(findAll(doc, "title")[0]); got != "Carrinho | App Lista de Tarefas" {
		t.Fatalf("title = %q", got)
	}
	if len(findAll(doc, "script")) != 0 {
		t.Fatal("expected no script without htmx url")
	}
}

func TestLayoutIncludesHTMXScriptWhenConfigured(t *testing.T) {
	t.Parallel()

	doc := render(t, context.Background(), Layout(PageContext{Loc: englishPage().Loc, HTMXScriptURL: "/static/htmx.min.js"}, ""))
	scripts := findAll(doc, "script")
	if len(scripts) != 1 || attrOf(scripts[0], "src") != "/static/htmx.min.js" {
		t.Fatalf("scripts = %d", len(scripts))
	}
}

func TestMainContentWrapsChildren(t *testing.T) {
	t.Parallel()

	ctx := templ.WithChildren(context.Background(), Cart(englishPage()))
	doc := render(t, ctx, MainContent())
	mains := findAll(doc, "main")
	if len(mains) != 1 || attrOf(mains[0], "id") != "main" {
		t.Fatalf("expected one main#main, got %d", len(mains))
	}
	if len(findByClass(mains[0], "cart")) != 1 {
		t.Fatal("expected cart section inside main")
	}
}

func TestFragmentTitleEscapesText(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := FragmentTitle(`<b>Cart</b> & more`).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got, want := b.String(), "<title>&lt;b&gt;Cart&lt;/b&gt; &amp; more</title>"; got != want {
		t.Fatalf("FragmentTitle() = %q, want %q", got, want)
	}
}

func TestPriceTagSeparatesLabelAndAmount(t *testing.T) {
	t.Parallel()

	price, _ := NewPrice(1999, "USD")
	doc := render(t, context.Background(), PriceTag(englishPage(), price))
	tags := findByClass(doc, "price")
	if len(tags) != 1 {
		t.Fatalf("price widgets = %d, want 1", len(tags))
	}
	if got := textOf(tags[0]); !strings.HasPrefix(got, "Price USD") {
		t.Fatalf("price text = %q, want label then amount", got)
	}
	if got := textOf(findByClass(doc, "price-amount")[0]); !strings.Contains(got, "19.99") {
		t.Fatalf("amount = %q", got)
	}
}

func TestDocumentTitle(t *testing.T) {
	t.Parallel()

	if got := DocumentTitle(englishPage(), ""); got != "Todo List app" {
		t.Fatalf("empty title = %q", got)
	}
	if got := DocumentTitle(englishPage(), "Todo List app"); got != "Todo List app" {
		t.Fatalf("app title = %q", got)
	}
	if got := DocumentTitle(englishPage(), "Home"); got != "Home | Todo List app" {
		t.Fatalf("home title = %q", got)
	}
}

func TestErrorPageCarriesStatus(t *testing.T) {
	t.Parallel()

	doc := render(t, context.Background(), ErrorPage(ErrorView{StatusCode: 404, TitleKey: "error.not_found.title", BodyKey: "error.not_found.body"}))
	sections := findAll(doc, "section")
	if len(sections) != 1 || attrOf(sections[0], "data-status") != "404" {
		t.Fatal("expected error section with status 404")
	}
}

func TestCartLinksBackHome(t *testing.T) {
	t.Parallel()

	doc := render(t, context.Background(), Cart(englishPage()))
	if !strings.Contains(textOf(doc), "Your cart is empty") {
		t.Fatal("expected empty cart copy")
	}
	links := findAll(doc, "a")
	if len(links) != 1 || attrOf(links[0], "href") != "/" {
		t.Fatal("expected one link back to /")
	}
}

func TestTWithoutLocalizerUsesBaseCatalog(t *testing.T) {
	t.Parallel()

	if got := T(nil, "header.new_task"); got != "New Task" {
		t.Fatalf("T(nil, header.new_task) = %q, want New Task", got)
	}
	if got := T(nil, "missing.%d", 7); got != "missing.7" {
		t.Fatalf("T(nil, missing) = %q, want key fallback", got)
	}
}

func TestHeaderWithoutLocalizerRendersBaseCopy(t *testing.T) {
	t.Parallel()

	doc := render(t, context.Background(), Header(PageContext{}))
	if got := textOf(findAll(doc, "button")[0]); got != "New Task" {
		t.Fatalf("button label = %q, want New Task", got)
	}
}

func TestPageContextTag(t *testing.T) {
	t.Parallel()

	if got := (PageContext{}).Tag(); got != language.AmericanEnglish {
		t.Fatalf("default tag = %v", got)
	}
	if got := (PageContext{Lang: "!!"}).Tag(); got != language.AmericanEnglish {
		t.Fatalf("invalid tag = %v", got)
	}
	if got := (PageContext{Lang: "pt-BR"}).Tag().String(); got != "pt-BR" {
		t.Fatalf("pt-BR tag = %v", got)
	}
}

func englishPage() PageContext {
	return pageFor("en-US")
}

func pageFor(lang string) PageContext {
	return PageContext{Lang: lang, Loc: message.NewPrinter(language.MustParse(lang))}
}

func homeView() HomeView {
	price, _ := NewPrice(1999, "USD")
	return HomeView{Page: englishPage(), Price: price}
}

func render(t *testing.T, ctx context.Context, c templ.Component) *html.Node {
	t.Helper()

	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc, err := html.Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := range n.Descendants() {
		if c.Type == html.ElementNode && c.Data == tag {
			out = append(out, c)
		}
	}
	return out
}

func findByClass(n *html.Node, class string) []*html.Node {
	var out []*html.Node
	for c := range n.Descendants() {
		if c.Type != html.ElementNode {
			continue
		}
		for _, name := range strings.Fields(attrOf(c, "class")) {
			if name == class {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func attrOf(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	for c := range n.Descendants() {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(b.String())
}
