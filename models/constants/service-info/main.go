package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "GenoBrowse API"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the GenoBrowse variant browsing API!"
	SERVICE_DESCRIPTION ServiceInfo = "Browsing, filtering and summary service for genomic enhancer variant datasets."

	SERVICE_ARTIFACT    ServiceInfo = "genobrowse"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("org.genobrowse:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
