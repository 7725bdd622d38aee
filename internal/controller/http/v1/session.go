package httpv1

import (
	"net/http"
	"net/url"

	logginghelper "github.com/Egor213/LogiBoard/internal/controller/common/logging"
	"github.com/Egor213/LogiBoard/internal/controller/http/validators"
	"github.com/Egor213/LogiBoard/internal/domain"
	"github.com/labstack/echo/v4"
)

const filterCookie = "logiboard_filter"

// cookieFilter returns the filter this client selected last. A missing or
// malformed cookie means no filter.
func cookieFilter(c echo.Context) domain.Filter {
	ck, err := c.Cookie(filterCookie)
	if err != nil {
		return domain.Filter{}
	}
	values, err := url.ParseQuery(ck.Value)
	if err != nil {
		return domain.Filter{}
	}
	f := domain.Filter{Service: values.Get("service"), Level: values.Get("level")}
	if validators.ValidateFilter(&f) != nil {
		return domain.Filter{}
	}
	return f
}

func saveFilter(c echo.Context, f domain.Filter) {
	c.SetCookie(&http.Cookie{
		Name:     filterCookie,
		Value:    url.Values{"service": {f.Service}, "level": {f.Level}}.Encode(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// queryFilter reads the filter from the query. ok is false when the query
// names neither service nor level.
func queryFilter(c echo.Context) (f domain.Filter, ok bool, err error) {
	q := c.QueryParams()
	if !q.Has("service") && !q.Has("level") {
		return domain.Filter{}, false, nil
	}
	f = domain.Filter{Service: q.Get("service"), Level: q.Get("level")}
	if err := validators.ValidateFilter(&f); err != nil {
		return domain.Filter{}, true, err
	}
	return f, true, nil
}

// requestFilter resolves the filter of a request: the query when it names
// one, else the client's cookie. A filter taken from the query is stored
// in the cookie.
func requestFilter(c echo.Context) (domain.Filter, error) {
	f, ok, err := queryFilter(c)
	if err != nil {
		return domain.Filter{}, err
	}
	if !ok {
		return cookieFilter(c), nil
	}
	rememberFilter(c, f)
	return f, nil
}

func rememberFilter(c echo.Context, f domain.Filter) {
	if f == cookieFilter(c) {
		return
	}
	saveFilter(c, f)
	logginghelper.LogFilterChanged(f, requestID(c))
}
