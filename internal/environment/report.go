package environment

// Bucket holds the hosts classified into one environment, in input order.
type Bucket struct {
	Environment string   `json:"environment"`
	Hosts       []string `json:"hosts"`
}

// Report is the result of classifying a list of hosts.
type Report struct {
	// Buckets has one entry per environment that matched at least one
	// host, ordered by catalog position.
	Buckets []Bucket `json:"buckets"`

	// Unmatched lists hosts that matched no environment, in input order.
	// They are not counted by Total.
	Unmatched []string `json:"unmatched,omitempty"`
}

// Aggregate classifies every host against catalog and groups the matches by
// environment. Each host occurrence lands in at most one bucket.
func Aggregate(hosts []string, catalog []string) *Report {
	index := make(map[string]int, len(catalog))
	for i, env := range catalog {
		if _, dup := index[env]; !dup {
			index[env] = i
		}
	}

	byEnv := make(map[string][]string)
	var unmatched []string
	for _, host := range hosts {
		env, ok := Classify(host, catalog)
		if !ok {
			unmatched = append(unmatched, host)
			continue
		}
		byEnv[env] = append(byEnv[env], host)
	}

	r := &Report{Unmatched: unmatched}
	for i, env := range catalog {
		if index[env] != i {
			continue
		}
		if matched, ok := byEnv[env]; ok {
			r.Buckets = append(r.Buckets, Bucket{Environment: env, Hosts: matched})
		}
	}
	return r
}

// Total returns the number of classified hosts.
func (r *Report) Total() int {
	n := 0
	for _, b := range r.Buckets {
		n += len(b.Hosts)
	}
	return n
}

// Hosts returns the hosts classified into env, or nil.
func (r *Report) Hosts(env string) []string {
	for _, b := range r.Buckets {
		if b.Environment == env {
			return b.Hosts
		}
	}
	return nil
}

// Map returns the environment to hosts mapping.
func (r *Report) Map() map[string][]string {
	m := make(map[string][]string, len(r.Buckets))
	for _, b := range r.Buckets {
		m[b.Environment] = b.Hosts
	}
	return m
}
