package utils

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// ClientIP devolve o IP da conexão. Atrás de proxy o RealIP do middleware já reescreveu o RemoteAddr.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ForwardedClientIP resolve o IP do visitante confiando em no máximo trustedProxies saltos.
// Cada proxy confiável acrescenta um endereço ao X-Forwarded-For, então o cliente é o
// endereço trustedProxies posições antes do RemoteAddr. Entradas à esquerda disso vêm do
// próprio cliente e são ignoradas.
func ForwardedClientIP(r *http.Request, trustedProxies int) string {
	remote := ClientIP(r)
	if trustedProxies <= 0 {
		return remote
	}

	var hops []string
	for _, header := range r.Header.Values("X-Forwarded-For") {
		for _, hop := range strings.Split(header, ",") {
			if hop = strings.TrimSpace(hop); hop != "" {
				hops = append(hops, hop)
			}
		}
	}

	if len(hops) == 0 {
		if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(realIP) != nil {
			return realIP
		}
		return remote
	}

	index := len(hops) - trustedProxies
	if index < 0 {
		index = 0
	}
	if net.ParseIP(hops[index]) == nil {
		return remote
	}
	return hops[index]
}

// HostFromURL devolve o hostname de uma URL, ou nil se não for possível interpretá-la
func HostFromURL(raw *string) *string {
	if raw == nil || *raw == "" {
		return nil
	}

	u, err := url.Parse(*raw)
	if err != nil || u.Hostname() == "" {
		return nil
	}

	host := u.Hostname()
	return &host
}
