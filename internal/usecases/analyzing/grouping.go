package analyzing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
)

// clientSuffixPattern reconhece nomes no formato "Nome Base - N", convenção
// usada para réplicas numeradas de uma mesma conta.
var clientSuffixPattern = regexp.MustCompile(`^(.*?)\s*-\s*(\d+)\s*$`)

// BaseClientName separa o nome base e o número de réplica de um nome de
// cliente. Nomes sem sufixo devolvem o próprio nome e réplica 0.
func BaseClientName(name string) (string, int) {
	matches := clientSuffixPattern.FindStringSubmatch(name)
	if matches == nil {
		return strings.TrimSpace(name), 0
	}

	suffix, err := strconv.Atoi(matches[2])
	if err != nil {
		return strings.TrimSpace(name), 0
	}

	return strings.TrimSpace(matches[1]), suffix
}

// GroupClients agrupa clientes que compartilham o mesmo nome base. Grupos saem
// ordenados pelo nome base e, dentro do grupo, pelo número de réplica. Relação
// apenas de exibição, derivada a cada chamada.
func GroupClients(clients []domain.Client, useTax UseTaxResolver) []domain.ClientGroup {
	type member struct {
		client domain.Client
		suffix int
	}

	membersByBase := make(map[string][]member)
	bases := make([]string, 0)

	for _, client := range clients {
		base, suffix := BaseClientName(client.Name)
		if _, ok := membersByBase[base]; !ok {
			bases = append(bases, base)
		}
		membersByBase[base] = append(membersByBase[base], member{client: client, suffix: suffix})
	}

	sort.Strings(bases)

	groups := make([]domain.ClientGroup, 0, len(bases))
	for _, base := range bases {
		members := membersByBase[base]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].suffix < members[j].suffix
		})

		group := domain.ClientGroup{BaseName: base}
		for _, m := range members {
			group.Clients = append(group.Clients, m.client)
			group.TotalOffers += len(m.client.Offers)

			for _, offer := range m.client.Offers {
				active := offer.UseTax
				if useTax != nil {
					active = useTax(offer)
				}
				if active {
					group.ActiveOffers++
				}
			}

			for _, sale := range m.client.Sales {
				if sale.Approved {
					group.TotalRevenue += sale.Amount
					group.TotalSales++
				}
			}
		}

		groups = append(groups, group)
	}

	return groups
}
