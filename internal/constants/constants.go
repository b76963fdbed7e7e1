package constants

// bridge v1 resources
const LightsResource = "lights"
const GroupsResource = "groups"
const StateResource = "state"

// light alerts
const AlertSelect = "select"

// pulse payload
const PulseTransitionTime = 40

const ContentTypeJSON = "application/json"

// config defaults
const DefaultLogLevel = "info"
const DefaultLogMaxAgeDays = 3
const LogTimeFormat = "2006/01/02 15:04:05"
