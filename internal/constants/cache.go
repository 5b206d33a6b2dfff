package constants

type CachePrefix string

const (
	CachePrefixMissionPath CachePrefix = "MISSION_PATH_"
)
