package internal

const ApplicationName = "runjot"
