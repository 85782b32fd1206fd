package cache

import "fmt"

// Key builds the cache key for an analysis of repo#number. The "#" delimiter
// is not valid in a GitHub repository slug, so distinct (repo, number) pairs
// never collide.
func Key(repo string, number int) string {
	return fmt.Sprintf("%s#%d", repo, number)
}
