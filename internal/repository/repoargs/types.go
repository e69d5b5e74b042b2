package repoargs

type RepositoryName string

const (
	PointAccountRepoName RepositoryName = "point_account"
	PointLedgerRepoName  RepositoryName = "point_ledger"
)
