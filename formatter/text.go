package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transitdb/requests"
)

// BuildText writes one line per answer:
//
//	Bus 256: 3 stops on route, 2 unique stops, 7800 route length, 2.303604 curvature
//	Bus 751: not found
//	Stop Samara: not found
//	Stop Prazhskaya: no buses
//	Stop Biryulyovo Zapadnoye: buses 256 828
func (rb *ResponseBuilder) BuildText(answers []requests.Answer) []byte {
	var b strings.Builder
	for _, a := range answers {
		rb.writeTextLine(&b, a)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func (rb *ResponseBuilder) writeTextLine(b *strings.Builder, a requests.Answer) {
	if a.Kind == requests.KindBusQuery {
		b.WriteString("Bus ")
	} else {
		b.WriteString("Stop ")
	}
	b.WriteString(a.Name)
	b.WriteString(": ")
	if a.Failed() {
		b.WriteString(a.ErrorMessage())
		return
	}
	switch a.Kind {
	case requests.KindBusQuery:
		if a.Stats == nil {
			return
		}
		b.WriteString(strconv.Itoa(a.Stats.StopCount))
		b.WriteString(" stops on route, ")
		b.WriteString(strconv.Itoa(a.Stats.UniqueStopCount))
		b.WriteString(" unique stops, ")
		b.WriteString(strconv.Itoa(a.Stats.RouteLength))
		b.WriteString(" route length, ")
		b.WriteString(rb.curvature(a.Stats.Curvature))
		b.WriteString(" curvature")
	case requests.KindStopQuery:
		if len(a.Buses) == 0 {
			b.WriteString("no buses")
			return
		}
		b.WriteString("buses ")
		b.WriteString(strings.Join(a.Buses, " "))
	}
}
