package middlewares

import (
	"net"
	"net/url"
	"strings"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// HTTPSRedirect sends plain-HTTP requests to their https:// equivalent with a 307
// before anything else runs. Requests a TLS terminator marked with
// X-Forwarded-Proto: https count as secure.
//
// httpsHost pins the redirect host[:port]. When it is empty and tlsPort is set, the
// target is the request hostname on tlsPort. With both empty the request host is kept.
func HTTPSRedirect(httpsHost, tlsPort string) gin.HandlerFunc {
	redirect := secure.New(secure.Config{
		SSLRedirect:          true,
		SSLTemporaryRedirect: true,
		SSLHost:              httpsHost,
		IsDevelopment:        false,
		SSLProxyHeaders:      map[string]string{"X-Forwarded-Proto": "https"},
	})

	if httpsHost != "" || tlsPort == "" {
		return redirect
	}

	return func(c *gin.Context) {
		// secure builds the target from Request.Host and does not call Next
		host := c.Request.Host
		c.Request.Host = hostOnPort(host, tlsPort)
		redirect(c)
		c.Request.Host = host
	}
}

// hostOnPort swaps the port of a Host header value. 443 is left implicit.
func hostOnPort(host, port string) string {
	hostname := (&url.URL{Host: host}).Hostname()
	if port == "443" {
		if strings.Contains(hostname, ":") {
			return "[" + hostname + "]"
		}
		return hostname
	}
	return net.JoinHostPort(hostname, port)
}
