package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const domainLookupTimeout = 3 * time.Second

// IsEmailDomainValid aceita o domínio quando há registro MX ou, na falta dele,
// quando o host resolve para algum IP.
func IsEmailDomainValid(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	host := email[at+1:]

	ctx, cancel := context.WithTimeout(ctx, domainLookupTimeout)
	defer cancel()

	r := net.DefaultResolver

	if mx, err := r.LookupMX(ctx, host); err == nil && len(mx) > 0 {
		return true
	}

	addrs, err := r.LookupIPAddr(ctx, host)
	return err == nil && len(addrs) > 0
}
