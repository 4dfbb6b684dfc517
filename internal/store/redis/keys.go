package redis

import "strconv"

const (
	// KeyAlertLog is the list holding the serialized alert history.
	KeyAlertLog = "domainsight:alerts:log"
	// KeyAlertKeys is the set of dedup keys already alerted on.
	KeyAlertKeys = "domainsight:alerts:keys"
)

// AlertKeyMember encodes a (domain, daysUntilExpiry) dedup key as a
// set member.
func AlertKeyMember(domainName string, daysUntilExpiry int) string {
	return domainName + "#" + strconv.Itoa(daysUntilExpiry)
}
