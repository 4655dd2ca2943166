package generics

// Forever lives in the program image for the whole process.
const Forever = "I will live forever!"
